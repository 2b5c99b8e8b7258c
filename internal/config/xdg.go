package config

import (
	"os"
	"path/filepath"
)

const appDir = "passgen"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appDir, "config.toml")
}

// DefaultDBPath returns the default path for the history database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appDir, "history.db")
}

// DefaultWordListDir is where relative word list names are looked up.
func DefaultWordListDir() string {
	return filepath.Join(XDGConfigHome(), appDir, "wordlists")
}

// ResolveWordList expands a bare word list name to DefaultWordListDir.
// "builtin", "bip39", empty and paths containing a separator pass through.
func ResolveWordList(source string) string {
	switch source {
	case "", "builtin", "bip39":
		return source
	}
	if filepath.IsAbs(source) || filepath.Base(source) != source {
		return source
	}
	return filepath.Join(DefaultWordListDir(), source+".txt")
}
