package cyphering

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors. Every structured error below matches exactly one
// of them through errors.Is.
var (
	// ErrMalformedReference is returned in strict mode when a placeholder
	// cannot be resolved.
	ErrMalformedReference = errors.New("cyphering: malformed reference")

	// ErrMalformedRelationshipType is returned in strict mode when a
	// relationship type signature does not match the endpoint grammar.
	ErrMalformedRelationshipType = errors.New("cyphering: malformed relationship type")

	// ErrLoadFailed is returned when a model file cannot be read or decoded.
	ErrLoadFailed = errors.New("cyphering: model load failed")

	// ErrInvalidConfig is returned for invalid options.
	ErrInvalidConfig = errors.New("cyphering: invalid configuration")

	// ErrValidationFailed is returned when a model fails validation.
	ErrValidationFailed = errors.New("cyphering: validation failed")
)

// MalformedReferenceError describes a field value whose placeholder could not
// be resolved.
type MalformedReferenceError struct {
	Alias  string // Owning entity alias
	Field  string // Field path, e.g. "attr.on_create.name" or "index[0]"
	Value  string // Raw value
	Reason string
}

// Error returns the error string.
func (e *MalformedReferenceError) Error() string {
	var b strings.Builder
	b.WriteString("cyphering: malformed reference")
	if e.Alias != "" {
		b.WriteString(" in ")
		b.WriteString(e.Alias)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	fmt.Fprintf(&b, " (value %q)", e.Value)
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// Is reports whether the target matches ErrMalformedReference.
func (e *MalformedReferenceError) Is(target error) bool {
	return target == ErrMalformedReference
}

// NewMalformedReferenceError returns a new MalformedReferenceError.
func NewMalformedReferenceError(alias, field, value, reason string) *MalformedReferenceError {
	return &MalformedReferenceError{Alias: alias, Field: field, Value: value, Reason: reason}
}

// IsMalformedReference returns true if the error is a MalformedReferenceError.
func IsMalformedReference(err error) bool {
	if err == nil {
		return false
	}
	var e *MalformedReferenceError
	return errors.As(err, &e)
}

// MalformedRelationshipTypeError describes a relationship whose type signature
// does not read as "<endpoint> <direction> <endpoint>".
type MalformedRelationshipTypeError struct {
	Alias string
	Type  string
}

// Error returns the error string.
func (e *MalformedRelationshipTypeError) Error() string {
	return fmt.Sprintf("cyphering: relationship %s: type %q does not match \"$a > $b\", \"$a - $b\" or \"$a < $b\"", e.Alias, e.Type)
}

// Is reports whether the target matches ErrMalformedRelationshipType.
func (e *MalformedRelationshipTypeError) Is(target error) bool {
	return target == ErrMalformedRelationshipType
}

// NewMalformedRelationshipTypeError returns a new MalformedRelationshipTypeError.
func NewMalformedRelationshipTypeError(alias, typ string) *MalformedRelationshipTypeError {
	return &MalformedRelationshipTypeError{Alias: alias, Type: typ}
}

// IsMalformedRelationshipType returns true if the error is a
// MalformedRelationshipTypeError.
func IsMalformedRelationshipType(err error) bool {
	if err == nil {
		return false
	}
	var e *MalformedRelationshipTypeError
	return errors.As(err, &e)
}

// LoadError represents a failure to read or decode a model file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

// Error returns the error string.
func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("cyphering: load")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches ErrLoadFailed.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailed
}

// NewLoadError returns a new LoadError.
func NewLoadError(path, message string, cause error) *LoadError {
	return &LoadError{Path: path, Message: message, Cause: cause}
}

// IsLoadError returns true if the error is a LoadError.
func IsLoadError(err error) bool {
	if err == nil {
		return false
	}
	var e *LoadError
	return errors.As(err, &e)
}

// ConfigError represents an invalid option value.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error returns the error string.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("cyphering: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("cyphering: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError returns a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// IsConfigError returns true if the error is a ConfigError.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var e *ConfigError
	return errors.As(err, &e)
}

// ValidationError reports one validation finding on an entity.
type ValidationError struct {
	Alias   string
	Field   string
	Message string
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("cyphering: %s.%s: %s", e.Alias, e.Field, e.Message)
	}
	return fmt.Sprintf("cyphering: %s: %s", e.Alias, e.Message)
}

// Is reports whether the target matches ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewValidationError returns a new ValidationError.
func NewValidationError(alias, field, message string) *ValidationError {
	return &ValidationError{Alias: alias, Field: field, Message: message}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}
