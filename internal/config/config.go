package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/saltyorg/params/internal/loader"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the complete configuration for the params tool.
type Config struct {
	ParamsEnv string         `yaml:"params_env"`
	Output    OutputConfig   `yaml:"output"`
	Template  TemplateConfig `yaml:"template"`
}

// OutputConfig controls how parsed documents are printed.
type OutputConfig struct {
	Format string `yaml:"format"`
	Indent int    `yaml:"indent"`
}

// TemplateConfig configures template rendering.
type TemplateConfig struct {
	MissingKey string `yaml:"missing_key"` // text/template missingkey option
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		ParamsEnv: loader.DefaultEnvVar,
		Output: OutputConfig{
			Format: FormatJSON,
			Indent: 2,
		},
		Template: TemplateConfig{
			MissingKey: "zero",
		},
	}
}

// Load reads and parses a config file from the given path. Fields absent
// from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields Default().
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks the configuration for required fields and consistency.
func (c *Config) Validate() error {
	if c.ParamsEnv == "" {
		return fmt.Errorf("params_env is required")
	}

	switch c.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatJSON, FormatYAML, c.Output.Format)
	}

	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return fmt.Errorf("output.indent must be between 0 and 8, got %d", c.Output.Indent)
	}

	switch c.Template.MissingKey {
	case "default", "zero", "error":
	default:
		return fmt.Errorf("template.missing_key must be one of default, zero, error; got %q", c.Template.MissingKey)
	}

	return nil
}
