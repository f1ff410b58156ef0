// Package config loads the optional arbor.yaml configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory when
// no path is given.
const FileName = "arbor.yaml"

// Config represents the arbor.yaml configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Layout  LayoutConfig  `yaml:"layout"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig selects the console log level.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"required,oneof=none debug normal"`
}

// LayoutConfig holds the default root client size used when a scene does not
// declare one.
type LayoutConfig struct {
	Width  float64 `yaml:"width" validate:"gte=0"`
	Height float64 `yaml:"height" validate:"gte=0"`
}

// MetricsConfig configures the optional Prometheus endpoint of arbor watch.
type MetricsConfig struct {
	Address string `yaml:"address,omitempty" validate:"omitempty,hostname_port"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "normal"},
		Layout:  LayoutConfig{Width: 800, Height: 600},
	}
}

// Load reads the configuration at path on top of the defaults. An empty path
// falls back to arbor.yaml in dir when it exists.
func Load(path, dir string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = filepath.Join(dir, FileName)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := Decode(bytes.NewReader(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration file %s: %w", path, err)
	}
	return cfg, nil
}

// Decode superimposes the YAML in r on cfg and validates the result. Unknown
// fields are rejected.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return Validate(cfg)
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Dump returns cfg as YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
