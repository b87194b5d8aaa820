package mcpserver

import (
	"fmt"

	"github.com/erraggy/oasdiag/internal/docutil"
)

// specInput represents the two ways an OAS document can be provided to a
// tool. Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// resolve loads the document as a normalized generic tree.
func (s specInput) resolve() (any, error) {
	switch {
	case s.File != "" && s.Content != "":
		return nil, fmt.Errorf("spec: provide either file or content, not both")
	case s.File != "":
		return docutil.Load(s.File)
	case s.Content != "":
		return docutil.Parse([]byte(s.Content))
	default:
		return nil, fmt.Errorf("spec: provide either file or content")
	}
}
