package load

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/syssam/cyphering"
	"github.com/syssam/cyphering/graph"
)

// Format is a model file format.
type Format string

// Supported model formats.
const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatOf returns the format of the model file at path, judged by its
// extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", cyphering.NewConfigError("model", path, fmt.Sprintf("unsupported model file extension %q", ext))
	}
}

// Load reads the model file at path, dispatching on its extension to
// LoadYAML or LoadHCL.
//
// Example:
//
//	m, err := load.Load("schema/model.yaml")
//	if err != nil {
//	    return err
//	}
func Load(path string) (*graph.Model, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	if format == FormatHCL {
		return LoadHCL(path)
	}
	return LoadYAML(path)
}

// LoadYAML reads a YAML model file regardless of its extension.
func LoadYAML(path string) (*graph.Model, error) {
	return loadFile(path, FormatYAML)
}

// LoadHCL reads an HCL model file regardless of its extension.
func LoadHCL(path string) (*graph.Model, error) {
	return loadFile(path, FormatHCL)
}

func loadFile(path string, format Format) (*graph.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cyphering.NewLoadError(path, "read", err)
	}
	return decode(path, data, format)
}

// LoadBytes decodes an in-memory model document of the given format.
func LoadBytes(data []byte, format Format) (*graph.Model, error) {
	return decode("", data, format)
}

func decode(path string, data []byte, format Format) (*graph.Model, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, cyphering.NewLoadError(path, "empty model", nil)
	}
	switch format {
	case FormatYAML:
		return decodeYAML(path, data)
	case FormatHCL:
		return decodeHCL(path, data)
	default:
		return nil, cyphering.NewConfigError("format", string(format), "unsupported model format")
	}
}
