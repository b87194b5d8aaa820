// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasdiag capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdiag"
)

const serverInstructions = `oasdiag MCP server — detects OAS variants and lints OpenAPI documents against their meta-schemas.

Configuration: All defaults are configurable via OASDIAG_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASDIAG_SCHEMA_DIR — directory holding default meta-schemas named by variant (2.0.json, 3.0.json, 3.1.json)
- OASDIAG_LINT_LIMIT (default: 100) — default page size for lint findings
- OASDIAG_MAX_LIMIT (default: 1000) — upper bound on any requested page size`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasdiag", Version: oasdiag.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Detect which OpenAPI Specification variant (2.0, 3.0, 3.1) a document declares. Unrecognized or missing declarations fall back to 3.0, matching the lint tool's behavior.",
	}, handleDetect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lint",
		Description: "Validate an OpenAPI document against the meta-schema for its detected variant and return user-facing findings (message plus path into the document), including \"Did you mean ...?\" suggestions for misspelled enum values. Meta-schemas are resolved from the schemas input or OASDIAG_SCHEMA_DIR. Use offset/limit to paginate through findings.",
	}, handleLint)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.LintLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.LintLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
