// Package expand resolves the placeholders of a graph.Model.
//
// # Placeholders
//
// A placeholder spans from the first '$' of a value to the last '.' of the
// whole value. The alias is taken between the last '$' before that '.' and
// the '.', which makes the match greedy:
//
//	"$other.name"  ->  "other.name"   alias "other"
//	"$.name"       ->  "<self>.name"  self reference
//	"$a.b.c"       ->  "a.b.c"        alias "a.b"
//
// What <self> becomes depends on the field being expanded:
//
//	attr.key, attr.on_create, attr.on_update  ->  keyword ("entry")
//	index, constraints, custom                ->  the entity's own alias
//
// Only attribute values record dependencies. Index, constraint and custom
// values never do.
//
// # Relationship Signatures
//
// Relationships carry a type signature naming two endpoints and a direction:
//
//	"$person > $company"   Left "person.",  Direction ">", Right "company."
//	"$. - $company"        Left "entry.",   Direction "-", Right "company."
//
// Endpoints and the direction are separated by whitespace, so "$a.b > $c"
// and "$person works-for $company" do not parse.
//
// Both endpoints are always recorded as dependencies, a self endpoint
// included (as the keyword).
//
// # Strict Mode
//
// By default malformed values pass through unchanged and unparsable
// signatures leave Endpoints nil. WithStrict(true) reports them as
// *cyphering.MalformedReferenceError and *cyphering.MalformedRelationshipTypeError
// while producing the same expanded model.
package expand
