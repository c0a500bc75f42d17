// Package load reads model files into a graph.Model.
//
// Two formats are understood, chosen by file extension: YAML (.yaml, .yml)
// and HCL (.hcl). Both describe the same document:
//
//	nodes:                                  node "Person" {
//	  - label: Person                         mode  = "merge"
//	    mode: merge                           index = ["$.email"]
//	    attr:                                 attr {
//	      key: { email: "$.email" }             key = { email = "$.email" }
//	    index: ["$.email"]                    }
//	rels:                                   }
//	  - label: WORKS_AT
//	    type: "$person > $company"          relationship "WORKS_AT" {
//	                                          type = "$person > $company"
//	                                        }
//
// Entities without an alias get one derived from their label. The loaders
// only shape the document; placeholders are left for package expand.
package load
