package load

import (
	"fmt"
	"maps"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/cyphering"
	"github.com/syssam/cyphering/graph"
)

// StringList is a YAML type that can be either a string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("line %d: expected string or list", node.Line)
	}
}

// MarshalYAML implements yaml.Marshaler for StringList.
func (s StringList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}

// definition is the format-agnostic shape of a model document.
type definition struct {
	Nodes []*entityDef `yaml:"nodes"`
	Rels  []*entityDef `yaml:"rels"`
}

type entityDef struct {
	Label       string     `yaml:"label"`
	Alias       string     `yaml:"alias"`
	Mode        string     `yaml:"mode"`
	Type        string     `yaml:"type"`
	Attr        attrDef    `yaml:"attr"`
	Index       StringList `yaml:"index"`
	Constraints StringList `yaml:"constraints"`
	// Constraint is the older spelling of Constraints.
	Constraint StringList `yaml:"constraint"`
	Custom     StringList `yaml:"custom"`
}

type attrDef struct {
	Key      map[string]string `yaml:"key"`
	OnCreate map[string]string `yaml:"on_create"`
	OnUpdate map[string]string `yaml:"on_update"`
}

// model converts the document into a graph.Model. path is only used in
// errors.
func (d *definition) model(path string) (*graph.Model, error) {
	nodes, err := entities(path, graph.KindNode, d.Nodes)
	if err != nil {
		return nil, err
	}
	rels, err := entities(path, graph.KindRelationship, d.Rels)
	if err != nil {
		return nil, err
	}
	return graph.NewModel(nodes, rels), nil
}

func entities(path string, kind graph.Kind, defs []*entityDef) ([]*graph.Entity, error) {
	out := make([]*graph.Entity, 0, len(defs))
	for i, d := range defs {
		if d == nil {
			return nil, cyphering.NewLoadError(path, fmt.Sprintf("%s #%d: empty definition", kind, i+1), nil)
		}
		e, err := d.entity(kind)
		if err != nil {
			return nil, cyphering.NewLoadError(path, fmt.Sprintf("%s #%d", kind, i+1), err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (d *entityDef) entity(kind graph.Kind) (*graph.Entity, error) {
	label := strings.TrimSpace(d.Label)
	if label == "" {
		return nil, fmt.Errorf("label is required")
	}
	alias := strings.TrimSpace(d.Alias)
	if alias == "" {
		alias = graph.DefaultAlias(label)
	}
	e := &graph.Entity{
		Kind:  kind,
		Label: label,
		Alias: alias,
		Mode:  strings.TrimSpace(d.Mode),
		Attr: graph.Attributes{
			Key:      trimMap(d.Attr.Key),
			OnCreate: trimMap(d.Attr.OnCreate),
			OnUpdate: trimMap(d.Attr.OnUpdate),
		},
		Index:       trimList(d.Index),
		Constraints: trimList(append(d.Constraints, d.Constraint...)),
		Custom:      trimList(d.Custom),
	}
	if kind == graph.KindRelationship {
		e.Type = strings.TrimSpace(d.Type)
	}
	return e, nil
}

func trimMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := maps.Clone(m)
	for k, v := range out {
		out[k] = strings.TrimSpace(v)
	}
	return out
}

func trimList(l []string) []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, len(l))
	for i, v := range l {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
