package expand

import (
	"fmt"
	"strings"

	"github.com/syssam/cyphering"
)

// Placeholder syntax.
const (
	// Prefix opens a placeholder.
	Prefix = '$'
	// Separator closes a placeholder.
	Separator = '.'
	// Keyword is the default token substituted for a self reference in
	// attribute values. It denotes the entity being created or updated.
	Keyword = "entry"
)

// Reference is the outcome of resolving one value.
type Reference struct {
	// Value is the resolved value. It equals the input when Found is false.
	Value string
	// Alias is the captured alias. Empty for a self reference.
	Alias string
	// Found reports whether the value holds a placeholder.
	Found bool
}

// Self reports whether the value held a self reference ("$.").
func (r Reference) Self() bool { return r.Found && r.Alias == "" }

// Named reports whether the value referenced another alias.
func (r Reference) Named() bool { return r.Found && r.Alias != "" }

// Resolve rewrites the placeholder held by value.
//
// The placeholder spans from the first '$' to the last '.' of the whole
// value. The alias is the text between the last '$' before that '.' and the
// '.' itself, so "$a.b.c" captures "a.b". The span is replaced by the alias
// followed by '.', or by self followed by '.' when the alias is empty.
// Values without a terminated placeholder are returned unchanged.
func Resolve(value, self string) Reference {
	start := strings.IndexByte(value, Prefix)
	if start < 0 {
		return Reference{Value: value}
	}
	end := strings.LastIndexByte(value, Separator)
	if end < start {
		return Reference{Value: value}
	}
	alias := value[strings.LastIndexByte(value[:end], Prefix)+1 : end]
	subst := alias
	if subst == "" {
		subst = self
	}
	var b strings.Builder
	b.Grow(len(value) - (end - start) + len(subst))
	b.WriteString(value[:start])
	b.WriteString(subst)
	b.WriteByte(Separator)
	b.WriteString(value[end+1:])
	return Reference{Value: b.String(), Alias: alias, Found: true}
}

// ResolveStrict resolves value like Resolve and additionally reports a
// *cyphering.MalformedReferenceError when value holds a '$' without a
// closing '.', or when the captured alias holds characters other than
// letters, digits, '_' and '.', or when several placeholders fall inside one
// greedy span and all but the last are lost. The returned Reference is the permissive
// result in every case.
func ResolveStrict(value, self string) (Reference, error) {
	ref := Resolve(value, self)
	if !ref.Found {
		if strings.IndexByte(value, Prefix) >= 0 {
			return ref, cyphering.NewMalformedReferenceError("", "", value, "unterminated placeholder: no '.' after '$'")
		}
		return ref, nil
	}
	if n := strings.Count(value[:strings.LastIndexByte(value, Separator)], string(Prefix)); n > 1 {
		return ref, cyphering.NewMalformedReferenceError("", "", value,
			fmt.Sprintf("%d placeholders collapse into one; only %q is kept", n, ref.Alias))
	}
	for _, r := range ref.Alias {
		if !isAliasRune(r) && r != Separator {
			return ref, cyphering.NewMalformedReferenceError("", "", value,
				fmt.Sprintf("alias %q contains %q", ref.Alias, r))
		}
	}
	return ref, nil
}

// isAliasRune reports whether r is a word character.
func isAliasRune(r rune) bool {
	return r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
