// Package config holds the launcher configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the launcher settings.
type Config struct {
	MaxVisible  int    `json:"max_visible"`  // Selectable entries shown at once
	MaxFrequent int    `json:"max_frequent"` // Entries in the Frequently Used section
	ShowUsage   bool   `json:"show_usage"`   // Render launch counts next to names
	AppsConfig  string `json:"apps_config"`  // Path to custom entries YAML, empty = default
}

// configFileName is the name of the config file
const configFileName = "hyperfind.json"

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		MaxVisible:  10,
		MaxFrequent: 5,
		ShowUsage:   false,
		AppsConfig:  "",
	}
}

// ConfigDir returns the directory containing hyperfind config files.
func ConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "hyperfind")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// CustomAppsPath returns the custom entries file, resolving the default.
func (c *Config) CustomAppsPath() string {
	if c.AppsConfig != "" {
		return c.AppsConfig
	}
	return filepath.Join(ConfigDir(), "apps.yaml")
}

// Load reads the configuration from the given path (ConfigPath when empty).
// A missing file yields the defaults. A malformed file also yields the
// defaults, with the parse error returned so the caller can log it; the
// launcher must start regardless.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return Default(), err
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration to its default location.
func (c *Config) Save() error {
	configPath := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// normalize clamps nonsense values back to the defaults.
func (c *Config) normalize() {
	if c.MaxVisible < 1 {
		c.MaxVisible = Default().MaxVisible
	}
	if c.MaxFrequent < 0 {
		c.MaxFrequent = Default().MaxFrequent
	}
}
