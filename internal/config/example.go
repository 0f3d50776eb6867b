package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# kantask configuration file
# Values can be overridden by KANTASK_* environment variables or global flags.

# Vault directory scanned for boards (supports ~ and $VAR expansion)
vault = "~/Notes"

# Default board, relative to the vault. Leave empty to discover boards.
# board = "Boards/Work.md"

# Document extensions treated as notes
extensions = [".md"]

# How to choose when several boards exist: "tui" or "none"
selector = "tui"

# Logging (written to stderr)
log_level = "info"     # debug, info, warn, error
log_format = "text"    # text, json, logfmt
log_timestamps = false
log_caller = false
`
}
