// Package config loads folio's configuration: a YAML file overlaid with
// FOLIO_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Config holds everything the preview needs to start.
type Config struct {
	// Page is the HTML file to preview. Empty means the embedded sample.
	Page string `koanf:"page" yaml:"page"`

	// DB is the SQLite file holding durable preferences.
	DB string `koanf:"db" yaml:"db"`

	// ColPx and RowPx map terminal cells to page pixels.
	ColPx int `koanf:"col_px" yaml:"col_px"`
	RowPx int `koanf:"row_px" yaml:"row_px"`

	// LogFile receives the engine's structured log.
	LogFile string `koanf:"log_file" yaml:"log_file"`

	// Watch enables live reload of the page file.
	Watch bool `koanf:"watch" yaml:"watch"`
}

// DefaultConfig returns a Config with sensible defaults. Paths under the
// user's home directory are resolved lazily by the caller when empty.
func DefaultConfig() *Config {
	return &Config{
		ColPx: 8,
		RowPx: 20,
		Watch: true,
	}
}

// DefaultDir returns the per-user folio directory (~/.folio).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".folio"), nil
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_PAGE -> page, etc.). A missing
// file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("FOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.ColPx <= 0 {
		return fmt.Errorf("col_px must be positive")
	}
	if c.RowPx <= 0 {
		return fmt.Errorf("row_px must be positive")
	}
	if c.Page != "" {
		if _, err := os.Stat(c.Page); err != nil {
			return fmt.Errorf("page %s: %w", c.Page, err)
		}
	}
	return nil
}
