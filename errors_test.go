package cyphering_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/cyphering"
)

func TestMalformedReferenceError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := cyphering.NewMalformedReferenceError("person", "attr.on_create.name", "$name", "unterminated placeholder")
		assert.Equal(t, `cyphering: malformed reference in person field attr.on_create.name (value "$name"): unterminated placeholder`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := cyphering.NewMalformedReferenceError("person", "", "$x", "")
		assert.True(t, errors.Is(err, cyphering.ErrMalformedReference))
		assert.False(t, errors.Is(err, cyphering.ErrMalformedRelationshipType))
	})

	t.Run("IsMalformedReference", func(t *testing.T) {
		err := cyphering.NewMalformedReferenceError("person", "", "$x", "")
		assert.True(t, cyphering.IsMalformedReference(fmt.Errorf("wrap: %w", err)))
		assert.True(t, cyphering.IsMalformedReference(errors.Join(errors.New("other"), err)))
		assert.False(t, cyphering.IsMalformedReference(errors.New("other")))
		assert.False(t, cyphering.IsMalformedReference(nil))
	})
}

func TestMalformedRelationshipTypeError(t *testing.T) {
	err := cyphering.NewMalformedRelationshipTypeError("worksAt", "$person $company")
	assert.Contains(t, err.Error(), "relationship worksAt")
	assert.Contains(t, err.Error(), `"$person $company"`)
	assert.True(t, errors.Is(err, cyphering.ErrMalformedRelationshipType))
	assert.True(t, cyphering.IsMalformedRelationshipType(fmt.Errorf("wrap: %w", err)))
	assert.False(t, cyphering.IsMalformedRelationshipType(nil))
}

func TestLoadError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := cyphering.NewLoadError("model.yaml", "read file", cause)
		assert.Equal(t, "cyphering: load model.yaml: read file: permission denied", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := cyphering.NewLoadError("model.yaml", "", cause)
		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, cyphering.ErrLoadFailed))
	})

	t.Run("IsLoadError", func(t *testing.T) {
		assert.True(t, cyphering.IsLoadError(cyphering.NewLoadError("m.yaml", "empty file", nil)))
		assert.False(t, cyphering.IsLoadError(errors.New("other")))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := cyphering.NewConfigError("Workers", -1, "must be positive")
		assert.Equal(t, `cyphering: config error for "Workers" (value: -1): must be positive`, err.Error())
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := cyphering.NewConfigError("Keyword", nil, "cannot be empty")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches ErrInvalidConfig", func(t *testing.T) {
		err := cyphering.NewConfigError("Keyword", nil, "cannot be empty")
		assert.True(t, errors.Is(err, cyphering.ErrInvalidConfig))
		assert.True(t, cyphering.IsConfigError(err))
	})
}

func TestValidationError(t *testing.T) {
	err := cyphering.NewValidationError("person", "mode", "invalid mode")
	assert.Equal(t, "cyphering: person.mode: invalid mode", err.Error())
	assert.Equal(t, "cyphering: person: duplicate alias", cyphering.NewValidationError("person", "", "duplicate alias").Error())
	assert.True(t, errors.Is(err, cyphering.ErrValidationFailed))
	assert.True(t, cyphering.IsValidationError(err))
	assert.False(t, cyphering.IsValidationError(nil))
}
