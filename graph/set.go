package graph

import (
	"encoding/json"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Set is a set of aliases. The zero value is an empty set ready to use
// through Add.
type Set map[string]struct{}

// NewSet returns a set holding the given aliases.
func NewSet(aliases ...string) Set {
	s := make(Set, len(aliases))
	for _, a := range aliases {
		s[a] = struct{}{}
	}
	return s
}

// Add inserts alias into the set, allocating it on first use.
func (s *Set) Add(alias string) {
	if *s == nil {
		*s = make(Set)
	}
	(*s)[alias] = struct{}{}
}

// Has reports whether alias is in the set.
func (s Set) Has(alias string) bool {
	_, ok := s[alias]
	return ok
}

// Len returns the number of aliases in the set.
func (s Set) Len() int { return len(s) }

// Sorted returns the aliases in lexical order. It never returns nil.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for a := range s {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// MarshalJSON implements json.Marshaler.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Set) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = NewSet(list...)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Set) MarshalYAML() (any, error) {
	return s.Sorted(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*s = NewSet(list...)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (s Set) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(s.Sorted())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (s *Set) DecodeMsgpack(dec *msgpack.Decoder) error {
	var list []string
	if err := dec.Decode(&list); err != nil {
		return err
	}
	*s = NewSet(list...)
	return nil
}
