package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// configValidate checks Config field constraints after decoding.
var configValidate = validator.New()

// Config holds CLI defaults; command-line flags take precedence.
type Config struct {
	// MaxSteps bounds each resolution (0 = unlimited).
	MaxSteps int `yaml:"max_steps" validate:"gte=0"`
	// Trace draws every resolution step to stderr.
	Trace bool `yaml:"trace"`
	// Format forces the input format: "text", "yaml" or "auto".
	Format string `yaml:"format" validate:"oneof=auto text yaml"`
	// Workers caps concurrent resolutions in batch mode (0 = one per file).
	Workers int `yaml:"workers" validate:"gte=0,lte=256"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{Format: formatAuto, Workers: 4}
}

// loadConfig reads path over DefaultConfig. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	if c.Format == "" {
		c.Format = formatAuto
	}
	if err := configValidate.Struct(c); err != nil {
		return c, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}
