// Package config loads the optional calc configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all calc configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	FloatFormat string `yaml:"float_format"` // strconv verb: e, E, f, g, G
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Output:  OutputConfig{FloatFormat: "g"},
	}
}

// Load reads the yaml config at path on top of the defaults. An empty path or
// a missing file yields the defaults. Environment overrides apply last.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Optional file; fall through to defaults.
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			dec := yaml.NewDecoder(bytes.NewReader(data))
			dec.KnownFields(true)
			if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CALC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CALC_FLOAT_FORMAT"); v != "" {
		c.Output.FloatFormat = v
	}
}

// FloatVerb returns the strconv.FormatFloat verb to render floats with,
// falling back to 'g' for anything outside e/E/f/g/G.
func (o OutputConfig) FloatVerb() byte {
	if len(o.FloatFormat) == 1 {
		switch v := o.FloatFormat[0]; v {
		case 'e', 'E', 'f', 'g', 'G':
			return v
		}
	}
	return 'g'
}
