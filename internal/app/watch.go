package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch runs once, then again whenever the model file is written or
// created. The parent directory is watched so that editors that
// replace the file are seen. Run errors are logged and do not stop watching.
func (a *App) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	path := filepath.Clean(a.cfg.ModelPath)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	a.rerun(ctx)
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("watch stopped")
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			a.logger.Debug("model changed", "path", ev.Name, "op", ev.Op.String())
			a.rerun(ctx)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watch error", "error", err)
		}
	}
}

func (a *App) rerun(ctx context.Context) {
	if err := a.runOnce(ctx); err != nil && ctx.Err() == nil {
		a.logger.Error("run failed", "error", err)
	}
}
