package load

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/syssam/cyphering"
	"github.com/syssam/cyphering/graph"
)

// hclFile is the top-level structure of an HCL model file.
type hclFile struct {
	Nodes []*hclEntity `hcl:"node,block"`
	Rels  []*hclEntity `hcl:"relationship,block"`
}

type hclEntity struct {
	Label       string   `hcl:"label,label"`
	Alias       string   `hcl:"alias,optional"`
	Mode        string   `hcl:"mode,optional"`
	Type        string   `hcl:"type,optional"`
	Index       []string `hcl:"index,optional"`
	Constraints []string `hcl:"constraints,optional"`
	Custom      []string `hcl:"custom,optional"`
	Attr        *hclAttr `hcl:"attr,block"`
}

type hclAttr struct {
	Key      map[string]string `hcl:"key,optional"`
	OnCreate map[string]string `hcl:"on_create,optional"`
	OnUpdate map[string]string `hcl:"on_update,optional"`
}

func (h *hclEntity) def() *entityDef {
	d := &entityDef{
		Label:       h.Label,
		Alias:       h.Alias,
		Mode:        h.Mode,
		Type:        h.Type,
		Index:       h.Index,
		Constraints: h.Constraints,
		Custom:      h.Custom,
	}
	if h.Attr != nil {
		d.Attr = attrDef{Key: h.Attr.Key, OnCreate: h.Attr.OnCreate, OnUpdate: h.Attr.OnUpdate}
	}
	return d
}

// decodeHCL decodes an HCL model document. path names the source in
// diagnostics.
func decodeHCL(path string, data []byte) (*graph.Model, error) {
	name := path
	if name == "" {
		name = "model.hcl"
	}
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, cyphering.NewLoadError(path, "parse hcl", diags)
	}
	var f hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
		return nil, cyphering.NewLoadError(path, "decode hcl", diags)
	}
	d := definition{
		Nodes: make([]*entityDef, len(f.Nodes)),
		Rels:  make([]*entityDef, len(f.Rels)),
	}
	for i, n := range f.Nodes {
		d.Nodes[i] = n.def()
	}
	for i, r := range f.Rels {
		d.Rels[i] = r.def()
	}
	return d.model(path)
}
