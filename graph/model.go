package graph

import "slices"

// Model is the set of entities described by one model file.
type Model struct {
	Nodes []*Entity `json:"nodes" yaml:"nodes" msgpack:"nodes"`
	Rels  []*Entity `json:"rels" yaml:"rels" msgpack:"rels"`

	// aliases indexes the first entity declared under each alias.
	aliases map[string]*Entity
	// duplicates holds entities whose alias was already taken.
	duplicates []*Entity
}

// NewModel returns a model over the given entities. It stamps the entity
// kinds and builds the alias index.
func NewModel(nodes, rels []*Entity) *Model {
	m := &Model{Nodes: nodes, Rels: rels}
	for _, n := range m.Nodes {
		n.Kind = KindNode
	}
	for _, r := range m.Rels {
		r.Kind = KindRelationship
	}
	m.reindex()
	return m
}

func (m *Model) reindex() {
	m.aliases = make(map[string]*Entity, len(m.Nodes)+len(m.Rels))
	m.duplicates = nil
	for _, e := range m.Entities() {
		if _, ok := m.aliases[e.Alias]; ok {
			m.duplicates = append(m.duplicates, e)
			continue
		}
		m.aliases[e.Alias] = e
	}
}

// Entities returns the nodes followed by the relationships.
func (m *Model) Entities() []*Entity {
	all := make([]*Entity, 0, len(m.Nodes)+len(m.Rels))
	all = append(all, m.Nodes...)
	return append(all, m.Rels...)
}

// Len returns the number of entities in the model.
func (m *Model) Len() int { return len(m.Nodes) + len(m.Rels) }

// Lookup returns the entity declared under alias.
func (m *Model) Lookup(alias string) (*Entity, bool) {
	if m.aliases == nil {
		m.reindex()
	}
	e, ok := m.aliases[alias]
	return e, ok
}

// Duplicates returns the entities whose alias was already declared by an
// earlier entity.
func (m *Model) Duplicates() []*Entity {
	if m.aliases == nil {
		m.reindex()
	}
	return m.duplicates
}

// Dependencies returns the entities that the given entities depend on, in
// alias order and without repetition. Aliases absent from the model are
// skipped.
func (m *Model) Dependencies(entities ...*Entity) []*Entity {
	var deps Set
	for _, e := range entities {
		for a := range e.DependsOn {
			deps.Add(a)
		}
	}
	var out []*Entity
	for _, a := range deps.Sorted() {
		if e, ok := m.Lookup(a); ok {
			out = append(out, e)
		}
	}
	return out
}

// ByMode returns the entities whose mode equals mode, ignoring case.
func ByMode(entities []*Entity, mode string) []*Entity {
	return slices.DeleteFunc(slices.Clone(entities), func(e *Entity) bool {
		return !e.HasMode(mode)
	})
}
