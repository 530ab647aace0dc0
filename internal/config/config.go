package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Config represents the justcomp configuration
type Config struct {
	Version string                 `yaml:"version"`
	Display Display                `yaml:"display,omitempty"`
	Dynamic Dynamic                `yaml:"dynamic,omitempty"`
	Extra   map[string][]Candidate `yaml:"extra,omitempty"`
}

// Display controls how candidates are rendered
type Display struct {
	// ColumnWidth is the display column candidate text is padded to before
	// its description. Zero means the built-in default.
	ColumnWidth int `yaml:"column_width,omitempty"`
}

// Dynamic toggles the completions that shell out to just itself
type Dynamic struct {
	Recipes   *bool `yaml:"recipes,omitempty"`   // nil = enabled
	Variables *bool `yaml:"variables,omitempty"` // nil = enabled
}

// Candidate is a user-defined completion entry appended to a command path
type Candidate struct {
	Text        string `yaml:"text"`
	Short       string `yaml:"short,omitempty"`
	Description string `yaml:"description,omitempty"`
}

const (
	ConfigFileName        = ".justcomp.yml"
	CurrentVersion        = "1.0"
	configFilePermissions = 0o600
)

// LoadConfig loads configuration from .justcomp.yml in the given directory,
// normally the directory containing the justfile. A missing file yields the
// default configuration, not an error.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{Version: CurrentVersion}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// SaveConfig saves configuration to .justcomp.yml in the given directory
func SaveConfig(dir string, config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	configPath := filepath.Join(dir, ConfigFileName)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, configFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = CurrentVersion
	}

	if c.Display.ColumnWidth < 0 {
		return fmt.Errorf("display.column_width must not be negative")
	}

	for path, candidates := range c.Extra {
		if path == "" {
			return fmt.Errorf("extra completion entries require a command path key")
		}
		for i, candidate := range candidates {
			if candidate.Text == "" {
				return fmt.Errorf("extra completion %d for %q requires a 'text' field", i+1, path)
			}
		}
	}

	return nil
}

// RecipesEnabled reports whether recipe names should be spliced into
// root-level completions.
func (c *Config) RecipesEnabled() bool {
	return c.Dynamic.Recipes == nil || *c.Dynamic.Recipes
}

// VariablesEnabled reports whether variable names should be offered for
// flags that take a VARIABLE argument.
func (c *Config) VariablesEnabled() bool {
	return c.Dynamic.Variables == nil || *c.Dynamic.Variables
}
