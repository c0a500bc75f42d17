package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/syssam/cyphering"
)

// Format names an encoding of the expanded model.
type Format string

// Supported formats.
const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatMsgpack}

// ParseFormat returns the format named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatMsgpack:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", cyphering.NewConfigError("Format", s, "unsupported format; use json, yaml or msgpack")
	}
}

// Encode writes m to w in the given format.
func Encode(w io.Writer, m *Model, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetSortMapKeys(true)
		return enc.Encode(m)
	default:
		return cyphering.NewConfigError("Format", string(f), "unsupported format")
	}
}

// Decode reads a model previously written by Encode and rebuilds its alias
// index.
func Decode(r io.Reader, f Format) (*Model, error) {
	var m Model
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&m)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&m)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&m)
	default:
		return nil, cyphering.NewConfigError("Format", string(f), "unsupported format")
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s model: %w", f, err)
	}
	return NewModel(m.Nodes, m.Rels), nil
}
