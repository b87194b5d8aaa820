package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdiag/diagnose"
	"github.com/erraggy/oasdiag/schemaval"
)

type lintInput struct {
	Spec    specInput         `json:"spec"              jsonschema:"The OAS document to lint"`
	Schemas map[string]string `json:"schemas,omitempty" jsonschema:"Meta-schema file path per OAS variant (keys 2.0, 3.0, 3.1); variants not listed fall back to <variant>.json under OASDIAG_SCHEMA_DIR"`
	Offset  int               `json:"offset,omitempty"  jsonschema:"Skip the first N findings (for pagination)"`
	Limit   int               `json:"limit,omitempty"   jsonschema:"Maximum number of findings to return (default 100)"`
}

type lintFinding struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

type lintOutput struct {
	Variant      string        `json:"variant"`
	FindingCount int           `json:"finding_count"`
	Returned     int           `json:"returned"`
	Findings     []lintFinding `json:"findings,omitempty"`
}

func handleLint(_ context.Context, _ *mcp.CallToolRequest, input lintInput) (*mcp.CallToolResult, lintOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	variant := diagnose.DetectVariant(doc)
	schemaPath := schemaPathFor(variant, input.Schemas)
	if schemaPath == "" {
		return errResult(fmt.Errorf("no meta-schema configured for variant %s; set OASDIAG_SCHEMA_DIR or pass schemas", variant)), lintOutput{}, nil
	}

	validator, err := schemaval.CompileFile(schemaPath)
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	pipeline, err := diagnose.New(
		diagnose.WithValidator(variant, validator.ValidateFunc()),
	)
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	findings := pipeline.Process(doc)

	output := lintOutput{
		Variant:      variant.String(),
		FindingCount: len(findings),
	}
	output.Findings = makeSlice[lintFinding](len(findings))
	for _, f := range findings {
		output.Findings = append(output.Findings, lintFinding{Path: f.Path, Message: f.Message})
	}
	output.Findings = paginate(output.Findings, input.Offset, input.Limit)
	output.Returned = len(output.Findings)

	return nil, output, nil
}

// schemaPathFor resolves the meta-schema path for a variant: an explicit
// per-call mapping wins, then the OASDIAG_SCHEMA_DIR convention, then
// nothing.
func schemaPathFor(variant diagnose.Variant, schemas map[string]string) string {
	if path, ok := schemas[variant.String()]; ok && path != "" {
		return path
	}
	if cfg.SchemaDir != "" {
		return filepath.Join(cfg.SchemaDir, variant.String()+".json")
	}
	return ""
}
