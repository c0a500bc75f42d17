// Package graph holds the entity model of a cyphering schema: the nodes and
// relationships described by a model file, their raw field values and the
// resolved counterparts filled in by the expand package.
//
// # Model Structure
//
// The Model type holds all entities and an alias index:
//
//	type Model struct {
//	    Nodes []*Entity  // node entities, in file order
//	    Rels  []*Entity  // relationship entities, in file order
//	}
//
// Entities are stored by pointer so that expansion writes land in the model
// itself rather than in a copy.
//
// # Entity Representation
//
// Each Entity carries raw inputs and resolved outputs side by side:
//
//	type Entity struct {
//	    Label, Alias, Mode string
//	    Attr        Attributes // Key, OnCreate, OnUpdate + Expanded*
//	    Index       []string   // + ExpandedIndex
//	    Constraints []string   // + ExpandedConstraints
//	    Custom      []string   // + ExpandedCustom
//	    Type        string     // relationship signature, e.g. "$a > $b"
//	    Endpoints   *Endpoints // resolved Left, Direction, Right
//	    DependsOn   Set        // aliases referenced by resolved fields
//	}
//
// Raw fields are inputs and are never written by expansion. Resolved fields
// and DependsOn are written once, by the expansion pass that owns the entity.
//
// # Validation
//
// Validate is a separate, opt-in pass over an expanded model:
//
//	res := graph.Validate(m, "entry")
//	if err := res.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// Validation includes:
//   - Mode is one of match, merge or create (case-insensitive)
//   - Alias uniqueness across nodes and relationships
//   - Every dependency names an alias of the model
//   - Relationship signatures that did not parse (warning)
//
// # Encoding
//
// Encode and Decode move an expanded model across process boundaries in JSON,
// YAML or msgpack. DependsOn is always written as a sorted list.
package graph
