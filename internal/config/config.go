// Package config loads the command line's ambient settings from YAML and
// merges them with flag overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vnykmshr/asyncflow/pkg/common/validation"
	"github.com/vnykmshr/asyncflow/pkg/scheduling/trigger"
)

// Log levels accepted by log_level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Schedule configures `asyncflow schedule`.
type Schedule struct {
	Cron    string `yaml:"cron"`
	MaxRuns int    `yaml:"max_runs"`
}

// Config is the YAML schema.
type Config struct {
	LogLevel    string   `yaml:"log_level"`
	Color       bool     `yaml:"color"`
	MetricsAddr string   `yaml:"metrics_addr"`
	Schedule    Schedule `yaml:"schedule"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Color:    true,
	}
}

// Load reads and validates the YAML file at path. An empty path yields
// Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default() and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := validation.ValidateOneOf("config", "log_level", c.LogLevel, LogLevels...); err != nil {
		return err
	}
	if err := validation.ValidateNonNegative("config", "schedule.max_runs", c.Schedule.MaxRuns); err != nil {
		return err
	}
	if c.Schedule.Cron != "" {
		if err := trigger.ValidateCronExpression(c.Schedule.Cron); err != nil {
			return err
		}
	}
	return nil
}

// Overrides holds values given on the command line. Nil fields leave the
// file value untouched.
type Overrides struct {
	LogLevel    *string
	Color       *bool
	MetricsAddr *string
	Cron        *string
	MaxRuns     *int
}

// Merge applies o on top of c and validates the result.
func (c Config) Merge(o Overrides) (Config, error) {
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
	if o.Color != nil {
		c.Color = *o.Color
	}
	if o.MetricsAddr != nil {
		c.MetricsAddr = *o.MetricsAddr
	}
	if o.Cron != nil {
		c.Schedule.Cron = *o.Cron
	}
	if o.MaxRuns != nil {
		c.Schedule.MaxRuns = *o.MaxRuns
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values map to Info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
