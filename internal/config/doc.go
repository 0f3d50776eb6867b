// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.kantask/kantask.toml or OS-specific config directory)
// 3. Project config file (kantask.toml or .kantask.toml in the working directory)
// 4. Environment variables (KANTASK_*)
// 5. Global CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.kantask/kantask.toml (preferred)
// - Windows: %APPDATA%\kantask\kantask.toml
// - macOS: ~/Library/Application Support/kantask/kantask.toml
// - Linux/BSD: $XDG_CONFIG_HOME/kantask/kantask.toml or ~/.config/kantask/kantask.toml
package config
