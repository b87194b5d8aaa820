package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oasdiag"
	"github.com/erraggy/oasdiag/cmd/oasdiag/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasdiag v%s\n", oasdiag.Version())
	case "help", "-h", "--help":
		printUsage()
	case "detect":
		if err := commands.HandleDetect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "lint":
		if err := commands.HandleLint(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("oasdiag v%s - OpenAPI validation diagnostics\n\n", oasdiag.Version())
	fmt.Println("Usage: oasdiag <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  detect    Detect which OAS variant a document declares")
	fmt.Println("  lint      Validate a document against its variant's meta-schema and print findings")
	fmt.Println("  mcp       Run the MCP server over stdio")
	fmt.Println("  version   Show version information")
	fmt.Println("  help      Show this help message")
	fmt.Println()
	fmt.Println("Run 'oasdiag <command> -h' for command-specific help.")
}
