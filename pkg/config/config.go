// Package config loads the keycoach configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/keycoach/keycoach/pkg/charset"
	"github.com/keycoach/keycoach/pkg/password"
)

// Config holds the keycoach configuration. The file carries no secrets;
// it only tunes defaults that flags can override per invocation.
type Config struct {
	DefaultLength  int      `yaml:"default_length" json:"default_length"`
	DefaultClasses []string `yaml:"default_classes" json:"default_classes"`
	OutputFormat   string   `yaml:"output_format" json:"output_format"`
	ContentPath    string   `yaml:"content_path" json:"content_path"`
}

// DefaultPath returns the default config file path: ~/.keycoach/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".keycoach", "config.yaml")
	}
	return filepath.Join(home, ".keycoach", "config.yaml")
}

// Load reads the configuration from the given YAML file path.
// If the file does not exist, it returns a default Config with no error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		DefaultLength:  16,
		DefaultClasses: []string{"lower", "upper", "digit", "symbol"},
		OutputFormat:   "table",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DefaultLength < 1 || c.DefaultLength > password.MaxLength {
		return fmt.Errorf("config: default_length %d outside [1, %d]", c.DefaultLength, password.MaxLength)
	}
	if len(c.DefaultClasses) == 0 {
		return fmt.Errorf("config: default_classes must name at least one class")
	}
	if _, err := charset.ParseList(c.DefaultClasses); err != nil {
		return fmt.Errorf("config: default_classes: %w", err)
	}
	return nil
}

// Classes parses DefaultClasses into catalog classes.
func (c *Config) Classes() ([]charset.Class, error) {
	classes, err := charset.ParseList(c.DefaultClasses)
	if err != nil {
		return nil, fmt.Errorf("config: default_classes: %w", err)
	}
	return classes, nil
}
