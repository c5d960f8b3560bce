// Package config loads the stampctl configuration file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/wasmstamp/errors"
)

// Config holds the tool-wide settings read from a TOML file.
type Config struct {
	// KeyDir is where key pairs are stored.
	KeyDir string `toml:"key_dir"`

	// Section is the custom-section name used when none is given.
	Section string `toml:"section"`

	// DefaultKey is the key label used when --key is omitted.
	DefaultKey string `toml:"default_key"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		KeyDir:  "keys",
		Section: "manifest",
	}
}

// Load reads a TOML config from path. Empty fields fall back to the
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.IO(errors.PhaseConfig, "read config", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse config")
	}
	return cfg.withDefaults(), nil
}

// LoadOrDefault reads path if it exists and falls back to defaults when
// it does not. An unreadable or malformed file is still an error.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) withDefaults() Config {
	def := Default()
	if c.KeyDir == "" {
		c.KeyDir = def.KeyDir
	}
	if c.Section == "" {
		c.Section = def.Section
	}
	return c
}
