// Package cyphering resolves symbolic references in a small graph-schema
// description language and builds the dependency relation a downstream
// statement generator needs to order its output.
//
// # Pipeline
//
//	model file (.yaml / .hcl)
//	        ↓
//	   compiler/load      (format-specific decoding)
//	        ↓
//	   graph.Model        (nodes, relationships, alias index)
//	        ↓
//	   compiler/expand    (placeholder resolution, dependency sets)
//	        ↓
//	   graph.Encode       (hand-off to the generator)
//
// # Placeholders
//
// String values may embed "$alias." to refer to another entity, or "$." to
// refer to the entity itself:
//
//	attr:
//	  on_create:
//	    name: "$.name"          # entry.name, no dependency
//	    employer: "$company.id" # company.id, depends on company
//	index:
//	  - "$.email"               # person.email (own alias)
//
// Relationship type signatures name two endpoints and a direction:
//
//	type: "$person > $company"
//
// This package holds the error types shared by the other packages.
package cyphering
