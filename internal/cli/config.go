// Package cli holds the configuration shared by the devutils commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config carries the settings shared by the serve commands.
type Config struct {
	Serve ServeConfig `yaml:"serve" json:"serve" toml:"serve"`
	Log   LogConfig   `yaml:"log" json:"log" toml:"log"`
}

// ServeConfig configures the HTTP transport.
type ServeConfig struct {
	Addr string `yaml:"addr" json:"addr" toml:"addr"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level string `yaml:"level" json:"level" toml:"level"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Serve: ServeConfig{Addr: ":8080"},
		Log:   LogConfig{Level: "info"},
	}
}

// LoadConfig reads a configuration file (YAML, JSON or TOML, keyed on the
// file extension) over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return cfg, nil
}
