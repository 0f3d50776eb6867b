package config

import (
	"fmt"
	"strings"
)

// Entry is one configuration value with its origin.
type Entry struct {
	Key    string
	Value  string
	Source ConfigSource
}

// Entries returns every configurable value in display order.
func (cws *ConfigWithSources) Entries() []Entry {
	cfg := cws.Config
	values := map[string]string{
		"vault":          cfg.Vault,
		"board":          cfg.Board,
		"extensions":     strings.Join(cfg.Extensions, ","),
		"selector":       cfg.Selector,
		"log_level":      cfg.LogLevel,
		"log_format":     cfg.LogFormat,
		"log_timestamps": fmt.Sprint(cfg.LogTimestamps),
		"log_caller":     fmt.Sprint(cfg.LogCaller),
	}

	entries := make([]Entry, 0, len(values))
	for _, field := range configFields() {
		source := cws.Sources[field]
		if source == "" {
			source = SourceDefault
		}
		entries = append(entries, Entry{Key: field, Value: values[field], Source: source})
	}
	return entries
}

// GetConfigFile returns the config file with the highest precedence that
// was loaded, or "" when none was.
func (cws *ConfigWithSources) GetConfigFile() string {
	if cws.Config.ProjectFile != "" {
		return cws.Config.ProjectFile
	}
	return cws.Config.UserFile
}
