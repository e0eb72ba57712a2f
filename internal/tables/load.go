package tables

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML tables file at path and merges it over the built-in
// defaults. Only the sections present in the file are replaced; an
// overridden table entry must be complete (partial entries fail
// validation rather than silently zero-filling constants).
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tables: read file: %w", err)
	}
	return Parse(data)
}

// Parse is Load for in-memory YAML content.
func Parse(data []byte) (*Tables, error) {
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("tables: parse yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
