package load

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/syssam/cyphering"
	"github.com/syssam/cyphering/graph"
)

// decodeYAML decodes a YAML model document. Unknown keys are rejected.
func decodeYAML(path string, data []byte) (*graph.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var d definition
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, cyphering.NewLoadError(path, "empty model", nil)
		}
		return nil, cyphering.NewLoadError(path, "decode yaml", err)
	}
	return d.model(path)
}
