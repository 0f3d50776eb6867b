package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// Selector modes for choosing between several boards.
const (
	SelectorTUI  = "tui"
	SelectorNone = "none"
)

// Default values.
const (
	DefaultVault     = "."
	DefaultSelector  = SelectorTUI
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// DefaultExtensions returns the document extensions scanned by default.
func DefaultExtensions() []string {
	return []string{".md"}
}

// Config holds the full configuration for kantask.
type Config struct {
	// Vault is the directory scanned for boards.
	Vault string `toml:"vault"`
	// Board is the default board handle, relative to Vault.
	Board      string   `toml:"board"`
	Extensions []string `toml:"extensions"`
	Selector   string   `toml:"selector"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Files that contributed to this config (computed)
	UserFile    string `toml:"-"`
	ProjectFile string `toml:"-"`
}

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
}

// configFields returns the configurable field names, in display order.
func configFields() []string {
	return []string{
		"vault",
		"board",
		"extensions",
		"selector",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Vault = DefaultVault
	cfg.Board = ""
	cfg.Extensions = DefaultExtensions()
	cfg.Selector = DefaultSelector
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}
