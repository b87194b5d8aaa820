package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// LintLimit is the default page size for lint findings.
	LintLimit int
	// MaxLimit caps any client-requested page size.
	MaxLimit int
	// SchemaDir is where meta-schemas are looked up by variant
	// ("2.0.json", "3.0.json", "3.1.json") when a tool call does not name
	// them explicitly. Empty means no default schemas are available.
	SchemaDir string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASDIAG_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		LintLimit: envInt("OASDIAG_LINT_LIMIT", 100),
		MaxLimit:  envInt("OASDIAG_MAX_LIMIT", 1000),
		SchemaDir: os.Getenv("OASDIAG_SCHEMA_DIR"),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
