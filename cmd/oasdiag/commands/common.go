// Package commands provides CLI command handlers for oasdiag.
package commands

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdiag/internal/cliutil"
	"github.com/erraggy/oasdiag/internal/docutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Writef writes formatted output, logging write failures to stderr.
var Writef = cliutil.Writef

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to w.
// Returns an error if marshaling fails.
func OutputStructured(w io.Writer, data any, format string) error {
	switch format {
	case FormatJSON:
		return cliutil.WriteJSON(w, data)
	case FormatYAML:
		bytes, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshaling to yaml: %w", err)
		}
		Writef(w, "%s\n", bytes)
		return nil
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
}

// loadDocumentArg loads the document named by a positional argument,
// supporting "-" for stdin.
func loadDocumentArg(path string) (any, error) {
	if path == StdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return docutil.Parse(data)
	}
	return docutil.Load(path)
}
