package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names a config file used when --config is not given.
const EnvPath = "LFSR_CONFIG"

// Config holds defaults that flags may override.
type Config struct {
	Output          string `yaml:"output"`            // text | json | jsonl
	Cap             int    `yaml:"cap"`               // step counter limit for capped runs
	Huge            bool   `yaml:"huge"`              // disable the cap
	Quiet           bool   `yaml:"quiet"`             // suppress warnings
	InvalidExitCode int    `yaml:"invalid_exit_code"` // exit status for rejected input
	LogLevel        string `yaml:"log_level"`         // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output:          "text",
		Cap:             100,
		InvalidExitCode: 0,
		LogLevel:        "info",
	}
}

// Load overlays the YAML file at path on Default. An empty path yields the
// defaults; a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges shared with the equivalent flags.
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid output %q", c.Output)
	}
	if c.Cap < 1 {
		return errors.New("cap must be ≥ 1")
	}
	if c.InvalidExitCode < 0 || c.InvalidExitCode > 255 {
		return errors.New("invalid_exit_code must be between 0 and 255")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

// Save writes c as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
