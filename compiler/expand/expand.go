package expand

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/cyphering"
	"github.com/syssam/cyphering/graph"
)

// Expander resolves the placeholders of a model and fills the resolved
// fields and dependency sets of its entities.
type Expander struct {
	cfg *Config
}

// New creates an Expander.
//
// Example:
//
//	x, err := expand.New(expand.WithStrict(true), expand.WithWorkers(4))
//	if err != nil {
//	    return err
//	}
//	err = x.Expand(ctx, model)
func New(opts ...Option) (*Expander, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Expander{cfg: cfg}, nil
}

// Config returns the expander settings.
func (x *Expander) Config() Config { return *x.cfg }

// Expand expands every entity of m, nodes first, in parallel. Each entity is
// owned by exactly one worker. Entities already expanded are skipped. A
// cancelled context stops scheduling and is returned as the error.
//
// In strict mode every malformed value of every entity is reported in the
// returned error; the model is still fully expanded.
func (x *Expander) Expand(ctx context.Context, m *graph.Model) error {
	entities := m.Entities()
	errs := make([]error, len(entities))

	var errg errgroup.Group
	errg.SetLimit(x.cfg.Workers)
	for i, e := range entities {
		if ctx.Err() != nil {
			break
		}
		errg.Go(func() error {
			errs[i] = x.ExpandEntity(e)
			return nil
		})
	}
	_ = errg.Wait()
	if err := ctx.Err(); err != nil {
		return err
	}
	x.cfg.Logger.Debug("model expanded", "nodes", len(m.Nodes), "rels", len(m.Rels))
	return errors.Join(errs...)
}

// ExpandEntity runs the single expansion pass of e: attributes, lists and,
// for relationships, the type signature. It is a no-op on an entity that was
// already expanded.
func (x *Expander) ExpandEntity(e *graph.Entity) error {
	if e.Expanded {
		return nil
	}
	var errs []error
	report := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	e.Attr.ExpandedKey = x.expandAttributes(e, "attr.key", e.Attr.Key, report)
	e.Attr.ExpandedOnCreate = x.expandAttributes(e, "attr.on_create", e.Attr.OnCreate, report)
	e.Attr.ExpandedOnUpdate = x.expandAttributes(e, "attr.on_update", e.Attr.OnUpdate, report)
	e.ExpandedIndex = x.expandList(e, "index", e.Index, report)
	e.ExpandedConstraints = x.expandList(e, "constraints", e.Constraints, report)
	e.ExpandedCustom = x.expandList(e, "custom", e.Custom, report)

	if e.IsRelationship() && !x.expandRelationship(e) {
		x.cfg.Logger.Debug("relationship type not parsed", "alias", e.Alias, "type", e.Type)
		if x.cfg.Strict {
			report(cyphering.NewMalformedRelationshipTypeError(e.Alias, e.Type))
		}
	}

	e.Expanded = true
	x.cfg.Logger.Debug("entity expanded", "kind", e.Kind, "alias", e.Alias, "depends_on", e.Dependencies())
	return errors.Join(errs...)
}

// expandAttributes resolves an attribute map. Self references resolve to the
// keyword; named references are recorded as dependencies.
func (x *Expander) expandAttributes(e *graph.Entity, field string, in map[string]string, report func(error)) map[string]string {
	out := make(map[string]string, len(in))
	// Sorted keys keep strict-mode errors in a stable order.
	for _, k := range slices.Sorted(maps.Keys(in)) {
		ref := x.resolve(e, fmt.Sprintf("%s.%s", field, k), in[k], x.cfg.Keyword, report)
		out[k] = ref.Value
		if ref.Named() {
			e.DependsOn.Add(ref.Alias)
		}
	}
	return out
}

// expandList resolves an ordered list. Self references resolve to the
// entity's own alias and nothing is recorded as a dependency.
func (x *Expander) expandList(e *graph.Entity, field string, in []string, report func(error)) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = x.resolve(e, fmt.Sprintf("%s[%d]", field, i), v, e.Alias, report).Value
	}
	return out
}

func (x *Expander) resolve(e *graph.Entity, field, value, self string, report func(error)) Reference {
	ref, err := ResolveStrict(value, self)
	if err != nil {
		var mre *cyphering.MalformedReferenceError
		if errors.As(err, &mre) {
			mre.Alias, mre.Field = e.Alias, field
		}
		x.cfg.Logger.Debug("malformed placeholder", "alias", e.Alias, "field", field, "error", err)
		if x.cfg.Strict {
			report(err)
		}
	}
	return ref
}
