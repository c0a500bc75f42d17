package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/cyphering"
	"github.com/syssam/cyphering/graph"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("Valid model", func(t *testing.T) {
		m := newTestModel()
		m.Rels[0].DependsOn = graph.NewSet("person", "company")
		m.Rels[0].Endpoints = &graph.Endpoints{Left: "person.", Direction: ">", Right: "company."}

		res := graph.Validate(m, "entry")
		assert.False(t, res.HasErrors())
		assert.False(t, res.HasWarnings())
		assert.NoError(t, res.Err())
		assert.Equal(t, "Validation passed", res.String())
	})

	t.Run("Invalid mode", func(t *testing.T) {
		m := newTestModel()
		m.Nodes[0].Mode = "upsert"
		m.Rels[0].Endpoints = &graph.Endpoints{}

		res := graph.Validate(m, "entry")
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "person", res.Errors[0].Alias)
		assert.Equal(t, "mode", res.Errors[0].Field)
		assert.Contains(t, res.Errors[0].Message, `"upsert"`)
	})

	t.Run("Unknown alias reference", func(t *testing.T) {
		m := newTestModel()
		m.Nodes[0].DependsOn = graph.NewSet("ghost", "company")
		m.Rels[0].Endpoints = &graph.Endpoints{}

		res := graph.Validate(m, "entry")
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0].Message, `"ghost"`)

		err := res.Err()
		require.Error(t, err)
		assert.True(t, errors.Is(err, cyphering.ErrValidationFailed))
		assert.True(t, cyphering.IsValidationError(err))
	})

	t.Run("Keyword is not an unknown alias", func(t *testing.T) {
		m := newTestModel()
		m.Rels[0].DependsOn = graph.NewSet("entry", "company")
		m.Rels[0].Endpoints = &graph.Endpoints{}

		res := graph.Validate(m, "entry")
		assert.False(t, res.HasErrors())
	})

	t.Run("Duplicate alias", func(t *testing.T) {
		a := &graph.Entity{Label: "Person", Alias: "person", Mode: "merge"}
		b := &graph.Entity{Label: "Person", Alias: "person", Mode: "merge"}
		m := graph.NewModel([]*graph.Entity{a, b}, nil)

		res := graph.Validate(m, "entry")
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0].Message, "duplicate alias")
	})

	t.Run("Unparsed relationship is a warning", func(t *testing.T) {
		m := newTestModel()

		res := graph.Validate(m, "entry")
		assert.False(t, res.HasErrors())
		require.True(t, res.HasWarnings())
		assert.Equal(t, "worksAt", res.Warnings[0].Alias)
		assert.NoError(t, res.Err())
		assert.Contains(t, res.String(), "Warnings:")
	})
}
