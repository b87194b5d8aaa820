// Package docutil loads OpenAPI description documents into generic trees.
//
// Documents may be YAML or JSON (YAML being a superset, one decoder handles
// both). Decoded trees are normalized through a JSON round trip so that maps
// are string-keyed and numbers carry JSON types, which is the shape both the
// schema validator and the diagnose pipeline expect.
package docutil

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// Parse decodes YAML or JSON document bytes into a normalized generic tree.
func Parse(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("docutil: parse document: %w", err)
	}
	return normalize(doc)
}

// Load reads and parses the document at path.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("docutil: read %s: %w", path, err)
	}
	return Parse(data)
}

// normalize round-trips a decoded tree through JSON to canonicalize map key
// and number types. YAML decoding yields int values and, for some inputs,
// non-string map keys; neither survives JSON marshaling, so the round trip
// either normalizes the tree or reports why it is not a JSON-compatible
// document.
func normalize(doc any) (any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("docutil: document is not JSON-compatible: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(data, &normalized); err != nil {
		return nil, fmt.Errorf("docutil: normalize document: %w", err)
	}
	return normalized, nil
}
