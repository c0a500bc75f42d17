package graph

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/cases"
)

// Kind tells nodes and relationships apart.
type Kind uint8

// Entity kinds.
const (
	KindUnset Kind = iota
	KindNode
	KindRelationship
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindRelationship:
		return "relationship"
	default:
		return "unset"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "node":
		*k = KindNode
	case "relationship":
		*k = KindRelationship
	case "unset", "":
		*k = KindUnset
	default:
		return fmt.Errorf("graph: unknown entity kind %q", text)
	}
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (k Kind) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(k.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (k *Kind) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return k.UnmarshalText([]byte(s))
}

// Modes understood by downstream generators. Mode itself stays an opaque
// string on the entity.
const (
	ModeMatch  = "match"
	ModeMerge  = "merge"
	ModeCreate = "create"
)

// Relationship directions.
const (
	DirectionOut        = ">"
	DirectionUndirected = "-"
	DirectionIn         = "<"
)

// Attributes holds the attribute assignments of an entity.
type Attributes struct {
	// Key holds the identifying attributes used when matching or merging.
	Key         map[string]string `json:"key,omitempty" yaml:"key,omitempty" msgpack:"key,omitempty"`
	ExpandedKey map[string]string `json:"expanded_key,omitempty" yaml:"expanded_key,omitempty" msgpack:"expanded_key,omitempty"`
	// OnCreate holds attributes assigned when the entity is created.
	OnCreate         map[string]string `json:"on_create,omitempty" yaml:"on_create,omitempty" msgpack:"on_create,omitempty"`
	ExpandedOnCreate map[string]string `json:"expanded_on_create,omitempty" yaml:"expanded_on_create,omitempty" msgpack:"expanded_on_create,omitempty"`
	// OnUpdate holds attributes assigned when the entity already exists.
	OnUpdate         map[string]string `json:"on_update,omitempty" yaml:"on_update,omitempty" msgpack:"on_update,omitempty"`
	ExpandedOnUpdate map[string]string `json:"expanded_on_update,omitempty" yaml:"expanded_on_update,omitempty" msgpack:"expanded_on_update,omitempty"`
}

// Endpoints holds the resolved endpoints of a relationship signature.
type Endpoints struct {
	Left      string `json:"left" yaml:"left" msgpack:"left"`
	Direction string `json:"direction" yaml:"direction" msgpack:"direction"`
	Right     string `json:"right" yaml:"right" msgpack:"right"`
}

// Normalized returns the endpoints in from/to order. A "<" relationship is
// flipped so that the direction reads ">"; other directions are unchanged.
func (e Endpoints) Normalized() (from, to, direction string) {
	if e.Direction == DirectionIn {
		return e.Right, e.Left, DirectionOut
	}
	return e.Left, e.Right, e.Direction
}

// Entity is a node or a relationship of the schema.
type Entity struct {
	Kind  Kind   `json:"kind" yaml:"kind" msgpack:"kind"`
	Label string `json:"label" yaml:"label" msgpack:"label"`
	Alias string `json:"alias" yaml:"alias" msgpack:"alias"`
	Mode  string `json:"mode,omitempty" yaml:"mode,omitempty" msgpack:"mode,omitempty"`
	// Type is the raw relationship signature, e.g. "$person > $company".
	Type string     `json:"type,omitempty" yaml:"type,omitempty" msgpack:"type,omitempty"`
	Attr Attributes `json:"attr" yaml:"attr" msgpack:"attr"`

	Index               []string `json:"index,omitempty" yaml:"index,omitempty" msgpack:"index,omitempty"`
	ExpandedIndex       []string `json:"expanded_index,omitempty" yaml:"expanded_index,omitempty" msgpack:"expanded_index,omitempty"`
	Constraints         []string `json:"constraints,omitempty" yaml:"constraints,omitempty" msgpack:"constraints,omitempty"`
	ExpandedConstraints []string `json:"expanded_constraints,omitempty" yaml:"expanded_constraints,omitempty" msgpack:"expanded_constraints,omitempty"`
	Custom              []string `json:"custom,omitempty" yaml:"custom,omitempty" msgpack:"custom,omitempty"`
	ExpandedCustom      []string `json:"expanded_custom,omitempty" yaml:"expanded_custom,omitempty" msgpack:"expanded_custom,omitempty"`

	// Endpoints is nil until the relationship signature parses.
	Endpoints *Endpoints `json:"endpoints,omitempty" yaml:"endpoints,omitempty" msgpack:"endpoints,omitempty"`
	// DependsOn holds the aliases referenced by the resolved fields.
	DependsOn Set `json:"depends_on" yaml:"depends_on" msgpack:"depends_on"`
	// Expanded reports whether the expansion pass has run on this entity.
	Expanded bool `json:"expanded" yaml:"expanded" msgpack:"expanded"`
}

// IsRelationship reports whether the entity is a relationship.
func (e *Entity) IsRelationship() bool { return e.Kind == KindRelationship }

// HasMode reports whether the entity mode equals mode, ignoring case.
func (e *Entity) HasMode(mode string) bool {
	return cases.Fold().String(e.Mode) == cases.Fold().String(mode)
}

// Dependencies returns the sorted aliases the entity depends on.
func (e *Entity) Dependencies() []string { return e.DependsOn.Sorted() }

// String returns a short description of the entity for logs and errors.
func (e *Entity) String() string {
	return fmt.Sprintf("%s %s (%s)", e.Kind, e.Alias, e.Label)
}

// DefaultAlias derives the alias used when none is given: the label with its
// first letter lower-cased.
func DefaultAlias(label string) string {
	r, size := utf8.DecodeRuneInString(label)
	if r == utf8.RuneError {
		return label
	}
	return string(unicode.ToLower(r)) + label[size:]
}
