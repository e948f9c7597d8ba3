// Package config loads cellmon CLI configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the CLI's settings.
type Config struct {
	// Debug surfaces real-time output per line instead of per chunk.
	Debug bool `yaml:"debug"`

	// Color is "auto" (detect terminal), "always", or "never".
	Color string `yaml:"color"`

	// Interpreter is the argv prefix that executes cell source; the source
	// is appended as the final argument.
	Interpreter []string `yaml:"interpreter"`

	// ResultCap is the maximum result preview length in post-run summaries.
	ResultCap int `yaml:"result_cap"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Debug:       false,
		Color:       ColorAuto,
		Interpreter: []string{"python3", "-c"},
		ResultCap:   200,
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", c.Color)
	}
	if len(c.Interpreter) == 0 {
		return fmt.Errorf("interpreter must not be empty")
	}
	if c.ResultCap <= 0 {
		return fmt.Errorf("result_cap must be positive")
	}
	return nil
}
