package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read by loadFromEnv.
const (
	EnvVault         = "KANTASK_VAULT"
	EnvBoard         = "KANTASK_BOARD"
	EnvExtensions    = "KANTASK_EXTENSIONS"
	EnvSelector      = "KANTASK_SELECTOR"
	EnvLogLevel      = "KANTASK_LOG_LEVEL"
	EnvLogFormat     = "KANTASK_LOG_FORMAT"
	EnvLogTimestamps = "KANTASK_LOG_TIMESTAMPS"
	EnvLogCaller     = "KANTASK_LOG_CALLER"
)

// loadFromEnv overrides config from environment variables.
// If sources is non-nil, it records SourceEnv for every value applied.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	mark := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv(EnvVault); v != "" {
		cfg.Vault = v
		mark("vault")
	}
	if v := os.Getenv(EnvBoard); v != "" {
		cfg.Board = v
		mark("board")
	}
	if v := os.Getenv(EnvExtensions); v != "" {
		if exts := splitList(v); len(exts) > 0 {
			cfg.Extensions = exts
			mark("extensions")
		}
	}
	if v := os.Getenv(EnvSelector); v != "" {
		cfg.Selector = v
		mark("selector")
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		mark("log_level")
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		mark("log_format")
	}
	if v := os.Getenv(EnvLogTimestamps); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		mark("log_timestamps")
	}
	if v := os.Getenv(EnvLogCaller); v != "" {
		cfg.LogCaller = boolFromString(v)
		mark("log_caller")
	}
}

// boolFromString accepts the usual spellings of true; anything else is false.
func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "on", "y":
		return true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}
