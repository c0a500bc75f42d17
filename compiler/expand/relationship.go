package expand

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/syssam/cyphering/graph"
)

// Signature is a relationship type signature split into its parts.
type Signature struct {
	// Left and Right are the raw endpoint tokens, e.g. "$person" or "$".
	Left, Right string
	// Direction is one of ">", "-" or "<".
	Direction string
}

// ParseSignature splits a type signature of the form
//
//	<endpoint> <filler> <direction> <filler> <endpoint>
//
// An endpoint is '$' followed by word characters, or the self form "$.",
// and must end at whitespace or at the end of s. The left endpoint is the
// first '$' of s; the right one is the last '$' after it and must follow
// whitespace. The direction is the last whitespace-separated field between
// them made only of '>', '-' and '<'. Within that field an arrow head wins
// over a shaft, so "->" reads as ">" and "<-" as "<"; a field holding both
// heads reads as "-". It reports false when s does not hold two endpoints
// with a direction between them.
func ParseSignature(s string) (Signature, bool) {
	first := strings.IndexByte(s, Prefix)
	if first < 0 {
		return Signature{}, false
	}
	left, leftEnd, ok := scanEndpoint(s, first)
	if !ok {
		return Signature{}, false
	}
	last := strings.LastIndexByte(s[leftEnd:], Prefix)
	if last < 0 {
		return Signature{}, false
	}
	last += leftEnd
	if r, _ := utf8.DecodeLastRuneInString(s[:last]); !unicode.IsSpace(r) {
		return Signature{}, false
	}
	right, _, ok := scanEndpoint(s, last)
	if !ok {
		return Signature{}, false
	}
	dir := direction(s[leftEnd:last])
	if dir == "" {
		return Signature{}, false
	}
	return Signature{Left: left, Direction: dir, Right: right}, true
}

// scanEndpoint reads the endpoint starting at s[i], which holds '$'. It
// returns the token ('$' and its word characters) and the index just past
// the endpoint, the '.' of a self endpoint included.
func scanEndpoint(s string, i int) (token string, next int, ok bool) {
	end := i + 1 + wordLen(s[i+1:])
	next = end
	if end == i+1 && next < len(s) && s[next] == Separator {
		next++
	}
	if next < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[next:]); !unicode.IsSpace(r) {
			return "", 0, false
		}
	}
	return s[i:end], next, true
}

func wordLen(s string) int {
	for i, r := range s {
		if !isAliasRune(r) {
			return i
		}
	}
	return len(s)
}

func direction(filler string) string {
	const symbols = graph.DirectionOut + graph.DirectionUndirected + graph.DirectionIn
	fields := strings.Fields(filler)
	for i := len(fields) - 1; i >= 0; i-- {
		f := fields[i]
		if strings.Trim(f, symbols) != "" {
			continue
		}
		out, in := strings.Contains(f, graph.DirectionOut), strings.Contains(f, graph.DirectionIn)
		switch {
		case out && !in:
			return graph.DirectionOut
		case in && !out:
			return graph.DirectionIn
		default:
			return graph.DirectionUndirected
		}
	}
	return ""
}

// resolveEndpoint resolves an endpoint token as a placeholder whose closing
// separator is implied: "$person" becomes "person." and "$" becomes
// keyword + ".". dep is the resolved token without its separator.
func resolveEndpoint(token, keyword string) (resolved, dep string) {
	ref := Resolve(token+string(Separator), keyword)
	return ref.Value, strings.TrimSuffix(ref.Value, string(Separator))
}

// expandRelationship parses the type signature of e and records both
// endpoints as dependencies, self endpoints included. It reports false when
// the signature does not parse; e is then left untouched.
func (x *Expander) expandRelationship(e *graph.Entity) bool {
	sig, ok := ParseSignature(e.Type)
	if !ok {
		return false
	}
	left, leftDep := resolveEndpoint(sig.Left, x.cfg.Keyword)
	right, rightDep := resolveEndpoint(sig.Right, x.cfg.Keyword)
	e.Endpoints = &graph.Endpoints{Left: left, Direction: sig.Direction, Right: right}
	e.DependsOn.Add(leftDep)
	e.DependsOn.Add(rightDep)
	return true
}
