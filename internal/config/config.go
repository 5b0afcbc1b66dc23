// Package config handles loading the rot3 command line tool's settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds all of the command line tool's settings.
type Config struct {
	Precision int           `yaml:"precision"` // 32 or 64; which float type the conversions are computed in
	Degrees   bool          `yaml:"degrees"`   // Read and print Euler angles in degrees rather than radians
	Format    string        `yaml:"format"`    // text or yaml
	Logging   LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Precision: 64,
		Degrees:   false,
		Format:    FormatText,
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}

// Load loads configuration with priority: defaults < file. An empty path looks in the standard locations, and it's not an
// error for there to be no config file at all.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Validate returns an error if any of the settings are out of range.
func (c *Config) Validate() error {
	if c.Precision != 32 && c.Precision != 64 {
		return fmt.Errorf("precision must be 32 or 64, got %d", c.Precision)
	}
	if c.Format != FormatText && c.Format != FormatYAML {
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatYAML, c.Format)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./rot3.yaml",
	}

	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "rot3", "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
