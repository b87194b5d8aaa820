package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasdiag/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasdiag mcp\n\n")
		Writef(fs.Output(), "Run the oasdiag MCP server over stdio. The server exposes detect and lint\n")
		Writef(fs.Output(), "tools to MCP clients and runs until the client disconnects or the process\n")
		Writef(fs.Output(), "receives SIGINT or SIGTERM.\n\n")
		Writef(fs.Output(), "Environment:\n")
		Writef(fs.Output(), "  OASDIAG_SCHEMA_DIR    directory holding <variant>.json meta-schemas\n")
		Writef(fs.Output(), "  OASDIAG_LINT_LIMIT    default page size for lint findings (default 100)\n")
		Writef(fs.Output(), "  OASDIAG_MAX_LIMIT     maximum page size for lint findings (default 1000)\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
