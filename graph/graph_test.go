package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/cyphering/graph"
)

func TestDefaultAlias(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  string
	}{
		{"Person", "person"},
		{"CompanyOwner", "companyOwner"},
		{"person", "person"},
		{"ÉCOLE", "éCOLE"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, graph.DefaultAlias(tt.label), "label %q", tt.label)
	}
}

func TestKindText(t *testing.T) {
	t.Parallel()

	for _, k := range []graph.Kind{graph.KindUnset, graph.KindNode, graph.KindRelationship} {
		text, err := k.MarshalText()
		require.NoError(t, err)
		var got graph.Kind
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, k, got)
	}
	var k graph.Kind
	assert.Error(t, k.UnmarshalText([]byte("edge")))
}

func TestSet(t *testing.T) {
	t.Parallel()

	var s graph.Set
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has("person"))
	assert.Equal(t, []string{}, s.Sorted())

	s.Add("person")
	s.Add("company")
	s.Add("person")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("company"))
	assert.Equal(t, []string{"company", "person"}, s.Sorted())
	assert.Equal(t, graph.NewSet("person", "company"), s)
}

func TestEndpointsNormalized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in             graph.Endpoints
		from, to, want string
	}{
		{graph.Endpoints{Left: "person.", Direction: ">", Right: "company."}, "person.", "company.", ">"},
		{graph.Endpoints{Left: "company.", Direction: "<", Right: "person."}, "person.", "company.", ">"},
		{graph.Endpoints{Left: "a.", Direction: "-", Right: "b."}, "a.", "b.", "-"},
	}
	for _, tt := range tests {
		from, to, dir := tt.in.Normalized()
		assert.Equal(t, tt.from, from)
		assert.Equal(t, tt.to, to)
		assert.Equal(t, tt.want, dir)
	}
}

func TestEntityHasMode(t *testing.T) {
	t.Parallel()

	e := &graph.Entity{Mode: "MERGE"}
	assert.True(t, e.HasMode(graph.ModeMerge))
	assert.False(t, e.HasMode(graph.ModeCreate))
	assert.Equal(t, "unset  ()", (&graph.Entity{}).String())
}

func newTestModel() *graph.Model {
	person := &graph.Entity{Label: "Person", Alias: "person", Mode: "merge"}
	company := &graph.Entity{Label: "Company", Alias: "company", Mode: "Match"}
	worksAt := &graph.Entity{Label: "WORKS_AT", Alias: "worksAt", Mode: "create", Type: "$person > $company"}
	return graph.NewModel([]*graph.Entity{person, company}, []*graph.Entity{worksAt})
}

func TestNewModel(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	assert.Equal(t, 3, m.Len())
	for _, n := range m.Nodes {
		assert.Equal(t, graph.KindNode, n.Kind)
	}
	require.Len(t, m.Rels, 1)
	assert.True(t, m.Rels[0].IsRelationship())

	e, ok := m.Lookup("company")
	require.True(t, ok)
	assert.Same(t, m.Nodes[1], e)

	_, ok = m.Lookup("missing")
	assert.False(t, ok)

	all := m.Entities()
	require.Len(t, all, 3)
	assert.Equal(t, "worksAt", all[2].Alias)
	assert.Empty(t, m.Duplicates())
}

func TestModelDuplicates(t *testing.T) {
	t.Parallel()

	first := &graph.Entity{Label: "Person", Alias: "person"}
	second := &graph.Entity{Label: "People", Alias: "person"}
	m := graph.NewModel([]*graph.Entity{first, second}, nil)

	e, ok := m.Lookup("person")
	require.True(t, ok)
	assert.Same(t, first, e)
	assert.Equal(t, []*graph.Entity{second}, m.Duplicates())
}

func TestModelZeroValueLookup(t *testing.T) {
	t.Parallel()

	m := &graph.Model{Nodes: []*graph.Entity{{Alias: "person"}}}
	_, ok := m.Lookup("person")
	assert.True(t, ok)
}

func TestModelDependencies(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	rel := m.Rels[0]
	rel.DependsOn = graph.NewSet("person", "company", "ghost")
	m.Nodes[0].DependsOn = graph.NewSet("company")

	deps := m.Dependencies(rel, m.Nodes[0])
	require.Len(t, deps, 2)
	assert.Equal(t, "company", deps[0].Alias)
	assert.Equal(t, "person", deps[1].Alias)

	assert.Empty(t, m.Dependencies())
}

func TestByMode(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	all := m.Entities()

	match := graph.ByMode(all, graph.ModeMatch)
	require.Len(t, match, 1)
	assert.Equal(t, "company", match[0].Alias)

	assert.Len(t, graph.ByMode(all, "MERGE"), 1)
	assert.Len(t, graph.ByMode(all, graph.ModeCreate), 1)
	assert.Empty(t, graph.ByMode(all, "delete"))
	assert.Len(t, all, 3, "input slice must not be modified")
}
