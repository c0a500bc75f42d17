package app

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/go-openapi/inflect"
	"github.com/google/uuid"

	"github.com/syssam/cyphering/compiler/expand"
	"github.com/syssam/cyphering/compiler/load"
	"github.com/syssam/cyphering/graph"
)

// runOnce loads, expands, optionally validates and writes the model. Nothing
// is written when any step fails.
func (a *App) runOnce(ctx context.Context) error {
	logger := a.logger.With("run", uuid.NewString())
	logger.Debug("run started", "model", a.cfg.ModelPath)

	m, err := load.Load(a.cfg.ModelPath)
	if err != nil {
		return err
	}
	logger.Info("model loaded", "path", a.cfg.ModelPath,
		"nodes", count(len(m.Nodes), "node"), "rels", count(len(m.Rels), "relationship"))

	opts := []expand.Option{expand.WithStrict(a.cfg.Strict), expand.WithLogger(logger)}
	if a.cfg.Workers > 0 {
		opts = append(opts, expand.WithWorkers(a.cfg.Workers))
	}
	x, err := expand.New(opts...)
	if err != nil {
		return err
	}
	if err := x.Expand(ctx, m); err != nil {
		return fmt.Errorf("expand %s: %w", a.cfg.ModelPath, err)
	}

	if a.cfg.Validate {
		res := graph.Validate(m, x.Config().Keyword)
		for _, w := range res.Warnings {
			logger.Warn("validation warning", "alias", w.Alias, "field", w.Field, "message", w.Message)
		}
		if res.HasErrors() {
			logger.Error("validation failed", "errors", count(len(res.Errors), "error"))
			return fmt.Errorf("validate %s: %w", a.cfg.ModelPath, res.Err())
		}
	}

	var buf bytes.Buffer
	if err := graph.Encode(&buf, m, a.cfg.Format); err != nil {
		return fmt.Errorf("encode %s: %w", a.cfg.Format, err)
	}
	if err := a.write(buf.Bytes()); err != nil {
		return err
	}
	logger.Info("model expanded", "entities", count(m.Len(), "entity"), "format", a.cfg.Format)
	return nil
}

func (a *App) write(data []byte) error {
	if a.cfg.OutputPath == "" {
		_, err := a.outW.Write(data)
		return err
	}
	if err := os.WriteFile(a.cfg.OutputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// count formats n with noun, pluralised unless n is 1.
func count(n int, noun string) string {
	if n != 1 {
		noun = inflect.Pluralize(noun)
	}
	return fmt.Sprintf("%d %s", n, noun)
}
