package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdiag/diagnose"
)

type detectInput struct {
	Spec specInput `json:"spec" jsonschema:"The OAS document to inspect"`
}

type detectOutput struct {
	Variant string `json:"variant"`
}

func handleDetect(_ context.Context, _ *mcp.CallToolRequest, input detectInput) (*mcp.CallToolResult, detectOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), detectOutput{}, nil
	}
	return nil, detectOutput{Variant: diagnose.DetectVariant(doc).String()}, nil
}
