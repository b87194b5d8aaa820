package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasdiag/diagnose"
)

// DetectFlags contains flags for the detect command
type DetectFlags struct {
	Format string
}

// SetupDetectFlags creates and configures a FlagSet for the detect command.
// Returns the FlagSet and a DetectFlags struct with bound flag variables.
func SetupDetectFlags() (*flag.FlagSet, *DetectFlags) {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	flags := &DetectFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasdiag detect [flags] <file|->\n\n")
		Writef(fs.Output(), "Detect which OAS variant a document declares (2.0, 3.0, or 3.1).\n")
		Writef(fs.Output(), "Documents with no recognizable version marker report 3.0.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasdiag detect openapi.yaml\n")
		Writef(fs.Output(), "  cat openapi.yaml | oasdiag detect -\n")
		Writef(fs.Output(), "  oasdiag detect --format json openapi.yaml | jq '.variant'\n")
	}

	return fs, flags
}

type detectResult struct {
	Variant string `json:"variant" yaml:"variant"`
}

// HandleDetect executes the detect command
func HandleDetect(args []string) error {
	fs, flags := SetupDetectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("detect command requires exactly one file path or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	doc, err := loadDocumentArg(fs.Arg(0))
	if err != nil {
		return err
	}

	variant := diagnose.DetectVariant(doc)
	if flags.Format == FormatText {
		Writef(os.Stdout, "%s\n", variant)
		return nil
	}
	return OutputStructured(os.Stdout, detectResult{Variant: variant.String()}, flags.Format)
}
