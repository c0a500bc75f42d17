package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/cyphering"
)

// ValidationResult holds the findings of Validate.
type ValidationResult struct {
	Errors   []*cyphering.ValidationError
	Warnings []*cyphering.ValidationError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err returns the validation errors joined, or nil when there are none.
// Warnings never make Err non-nil.
func (r *ValidationResult) Err() error {
	if !r.HasErrors() {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// String returns a human-readable summary of the validation result.
func (r *ValidationResult) String() string {
	var sb strings.Builder
	if len(r.Errors) > 0 {
		sb.WriteString("Errors:\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&sb, "  - %s\n", e.Error())
		}
	}
	if len(r.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&sb, "  - %s\n", w.Error())
		}
	}
	if sb.Len() == 0 {
		return "Validation passed"
	}
	return sb.String()
}

func (r *ValidationResult) addError(alias, field, format string, args ...any) {
	r.Errors = append(r.Errors, cyphering.NewValidationError(alias, field, fmt.Sprintf(format, args...)))
}

func (r *ValidationResult) addWarning(alias, field, format string, args ...any) {
	r.Warnings = append(r.Warnings, cyphering.NewValidationError(alias, field, fmt.Sprintf(format, args...)))
}

// Validate checks an expanded model for mistakes that expansion passes
// through silently. keyword is the reserved self-reference token, which is
// never reported as an unknown alias.
func Validate(m *Model, keyword string) *ValidationResult {
	res := &ValidationResult{}
	for _, d := range m.Duplicates() {
		res.addError(d.Alias, "", "duplicate alias (%s %q)", d.Kind, d.Label)
	}
	for _, e := range m.Entities() {
		switch {
		case e.HasMode(ModeMatch), e.HasMode(ModeMerge), e.HasMode(ModeCreate):
		default:
			res.addError(e.Alias, "mode", "invalid mode %q: must be one of %s, %s or %s", e.Mode, ModeMatch, ModeMerge, ModeCreate)
		}
		for _, a := range e.Dependencies() {
			if a == keyword {
				continue
			}
			if _, ok := m.Lookup(a); !ok {
				res.addError(e.Alias, "depends_on", "alias reference %q not found", a)
			}
		}
		if e.IsRelationship() && e.Endpoints == nil {
			res.addWarning(e.Alias, "type", "relationship type %q has no resolved endpoints", e.Type)
		}
	}
	return res
}
