package state

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExportYAML renders s as YAML with the same structure as the saved blob.
func ExportYAML(s *State) ([]byte, error) {
	blob, err := Save(s)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, fmt.Errorf("reparse state: %w", err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return out, nil
}

// ImportYAML parses a document produced by ExportYAML. It goes through Load,
// so the same schema and version checks apply.
func ImportYAML(b []byte) (*State, error) {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	blob, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert yaml: %w", err)
	}
	return Load(blob)
}
