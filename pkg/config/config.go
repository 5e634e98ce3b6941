// Package config loads the asio-host configuration file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the asio-host configuration.
type Config struct {
	// Driver selects a driver by name, sub-key name or class identifier.
	Driver string `yaml:"driver"`

	// SampleRate is applied to the selected driver when non-zero.
	SampleRate float64 `yaml:"sample_rate"`

	// BufferSize is the buffer size in samples. Zero uses the driver's
	// preferred size.
	BufferSize int `yaml:"buffer_size"`

	// EventLog is the path of the lifecycle event log. Empty disables it.
	EventLog string `yaml:"event_log"`

	// StateFile is the path of the host state file. Empty disables it.
	StateFile string `yaml:"state_file"`

	// Fixture is a simulated environment to use instead of the system
	// registry and COM runtime.
	Fixture string `yaml:"fixture"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{LogLevel: "info"}
}

// LoadError describes a configuration file that could not be used.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Parse decodes a configuration document over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &LoadError{Message: "invalid configuration", Cause: err}
	}
	return cfg, nil
}

// Load reads a configuration file. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
		}
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.SampleRate < 0 {
		return fmt.Errorf("sample_rate must not be negative: %v", c.SampleRate)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("buffer_size must not be negative: %d", c.BufferSize)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level for LogLevel.
func (c Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// ParseLevel converts a level name to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", s)
	}
}
