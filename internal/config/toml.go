// Package config loads the passgen TOML file and resolves XDG paths.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig is the on-disk configuration. Every field is optional; nil means
// "use the flag default".
type FileConfig struct {
	Password   PasswordConfig   `toml:"password"`
	Passphrase PassphraseConfig `toml:"passphrase"`
	History    HistoryConfig    `toml:"history"`
}

// PasswordConfig maps the [password] table.
type PasswordConfig struct {
	Length     *int    `toml:"length"`
	Upper      *bool   `toml:"upper"`
	Lower      *bool   `toml:"lower"`
	Digits     *bool   `toml:"digits"`
	Symbols    *bool   `toml:"symbols"`
	Custom     *string `toml:"custom-symbols"`
	MinUpper   *int    `toml:"min-upper"`
	MinLower   *int    `toml:"min-lower"`
	MinDigits  *int    `toml:"min-digits"`
	MinSymbols *int    `toml:"min-symbols"`
	MinCustom  *int    `toml:"min-custom"`
}

// PassphraseConfig maps the [passphrase] table.
type PassphraseConfig struct {
	Mode       *string `toml:"mode"`
	Words      *int    `toml:"words"`
	Target     *int    `toml:"target-length"`
	Separator  *string `toml:"separator"`
	Capitalize *bool   `toml:"capitalize"`
	Numbers    *bool   `toml:"numbers"`
	MinNumbers *int    `toml:"min-numbers"`
	WordList   *string `toml:"wordlist"`
}

// HistoryConfig maps the [history] table.
type HistoryConfig struct {
	Enabled *bool   `toml:"enabled"`
	DB      *string `toml:"db"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Template is written by `passgen config` when no file exists yet.
const Template = `# passgen configuration. Command-line flags override these values.

[password]
# length = 16
# upper = true
# lower = true
# digits = true
# symbols = true
# custom-symbols = ""
# min-upper = 1
# min-lower = 1
# min-digits = 1
# min-symbols = 1
# min-custom = 0

[passphrase]
# mode = "word-count"        # or "character-length"
# words = 4
# target-length = 24
# separator = "-"            # "-", "_", ".", " " or up to 3 characters
# capitalize = false
# numbers = false
# min-numbers = 1
# wordlist = "builtin"       # "builtin", "bip39" or a path

[history]
# enabled = false
# db = ""
`

// WriteTemplate creates path with Template unless it already exists.
func WriteTemplate(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create config: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(Template); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}
