package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/oasdiag/diagnose"
	"github.com/erraggy/oasdiag/schemaval"
)

// LintFlags contains flags for the lint command
type LintFlags struct {
	Schema    string
	SchemaDir string
	Quiet     bool
	Format    string
}

// SetupLintFlags creates and configures a FlagSet for the lint command.
// Returns the FlagSet and a LintFlags struct with bound flag variables.
func SetupLintFlags() (*flag.FlagSet, *LintFlags) {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	flags := &LintFlags{}

	fs.StringVar(&flags.Schema, "schema", "", "meta-schema file to validate against (overrides --schema-dir)")
	fs.StringVar(&flags.SchemaDir, "schema-dir", "", "directory holding <variant>.json meta-schemas (2.0.json, 3.0.json, 3.1.json)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress the summary line, only print findings")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress the summary line, only print findings")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasdiag lint [flags] <file|->\n\n")
		Writef(fs.Output(), "Validate an OAS document against the meta-schema for the variant it declares,\n")
		Writef(fs.Output(), "then rewrite the raw schema errors into readable findings.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasdiag lint --schema schemas/3.0.json openapi.yaml\n")
		Writef(fs.Output(), "  oasdiag lint --schema-dir schemas/ openapi.yaml\n")
		Writef(fs.Output(), "  cat openapi.yaml | oasdiag lint -q --schema schemas/3.0.json -\n")
		Writef(fs.Output(), "  oasdiag lint --format json --schema-dir schemas/ openapi.yaml | jq '.findings'\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Document is valid\n")
		Writef(fs.Output(), "  1    Findings were reported or linting failed\n")
	}

	return fs, flags
}

type lintResult struct {
	Variant  string            `json:"variant"            yaml:"variant"`
	Valid    bool              `json:"valid"              yaml:"valid"`
	Findings []lintFindingJSON `json:"findings,omitempty" yaml:"findings,omitempty"`
}

type lintFindingJSON struct {
	Path    []string `json:"path"    yaml:"path"`
	Message string   `json:"message" yaml:"message"`
}

// HandleLint executes the lint command
func HandleLint(args []string) error {
	fs, flags := SetupLintFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("lint command requires exactly one file path or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	doc, err := loadDocumentArg(fs.Arg(0))
	if err != nil {
		return err
	}

	variant := diagnose.DetectVariant(doc)
	schemaPath := resolveSchemaPath(flags, variant)
	if schemaPath == "" {
		return fmt.Errorf("no meta-schema for variant %s; pass --schema or --schema-dir", variant)
	}

	validator, err := schemaval.CompileFile(schemaPath)
	if err != nil {
		return err
	}

	pipeline, err := diagnose.New(
		diagnose.WithValidator(variant, validator.ValidateFunc()),
	)
	if err != nil {
		return err
	}

	findings := pipeline.Process(doc)

	if err := renderLintResult(os.Stdout, variant, findings, flags); err != nil {
		return err
	}
	if len(findings) > 0 {
		return fmt.Errorf("%d finding(s) reported", len(findings))
	}
	return nil
}

// resolveSchemaPath picks the meta-schema file: an explicit --schema wins,
// otherwise <variant>.json under --schema-dir.
func resolveSchemaPath(flags *LintFlags, variant diagnose.Variant) string {
	if flags.Schema != "" {
		return flags.Schema
	}
	if flags.SchemaDir != "" {
		return filepath.Join(flags.SchemaDir, variant.String()+".json")
	}
	return ""
}

func renderLintResult(w io.Writer, variant diagnose.Variant, findings []diagnose.Finding, flags *LintFlags) error {
	if flags.Format != FormatText {
		result := lintResult{
			Variant: variant.String(),
			Valid:   len(findings) == 0,
		}
		for _, f := range findings {
			result.Findings = append(result.Findings, lintFindingJSON{Path: f.Path, Message: f.Message})
		}
		return OutputStructured(w, result, flags.Format)
	}

	for _, f := range findings {
		if len(f.Path) > 0 {
			Writef(w, "✗ %s: %s\n", strings.Join(f.Path, "."), f.Message)
		} else {
			Writef(w, "✗ %s\n", f.Message)
		}
	}
	if !flags.Quiet {
		if len(findings) == 0 {
			Writef(w, "✓ Document is valid (variant %s)\n", variant)
		} else {
			Writef(w, "\n%d finding(s) in variant %s document\n", len(findings), variant)
		}
	}
	return nil
}
