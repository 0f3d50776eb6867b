package config

import (
	"flag"
	"strings"
)

// flagFields maps global flag names to config field names.
var flagFields = map[string]string{
	"vault":          "vault",
	"board":          "board",
	"ext":            "extensions",
	"selector":       "selector",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
}

// parseFlags defines the global flags on fs and parses args. Only flags
// that were set explicitly override cfg. If sources is non-nil, it records
// SourceFlag for each of them.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("kantask", flag.ContinueOnError)
	}

	var (
		vault, board, selector string
		exts                   string
		logLevel, logFormat    string
		logTimestamps          bool
		logCaller              bool
	)
	fs.StringVar(&vault, "vault", cfg.Vault, "Vault directory to scan for boards")
	fs.StringVar(&board, "board", cfg.Board, "Default board, relative to the vault")
	fs.StringVar(&exts, "ext", strings.Join(cfg.Extensions, ","), "Comma separated document extensions")
	fs.StringVar(&selector, "selector", cfg.Selector, "Board selector when several boards exist (tui, none)")
	fs.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&logTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&logCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vault":
			cfg.Vault = vault
		case "board":
			cfg.Board = board
		case "ext":
			if list := splitList(exts); len(list) > 0 {
				cfg.Extensions = list
			}
		case "selector":
			cfg.Selector = selector
		case "log-level":
			cfg.LogLevel = logLevel
		case "log-format":
			cfg.LogFormat = logFormat
		case "log-timestamps":
			cfg.LogTimestamps = logTimestamps
		case "log-caller":
			cfg.LogCaller = logCaller
		default:
			return
		}
		if sources != nil {
			sources[flagFields[f.Name]] = SourceFlag
		}
	})
	return nil
}
