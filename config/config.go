// Package config provides configuration loading and management for the
// swanconfig tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete swanconfig tool configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Run    RunConfig    `yaml:"run"`
	Log    LogConfig    `yaml:"log"`
}

// RenderConfig configures command-file generation
type RenderConfig struct {
	// Definition is the path to the YAML model definition
	Definition string `yaml:"definition"`
	// OutputDir is the directory the command file and staged data are written to
	OutputDir string `yaml:"output_dir"`
	// Filename is the name of the generated command file
	Filename string `yaml:"filename"`
}

// RunConfig configures the default simulation period
type RunConfig struct {
	// Start is the beginning of the simulation period
	Start time.Time `yaml:"start"`
	// Duration is the length of the simulation period
	Duration time.Duration `yaml:"duration"`
	// Interval is the default computation and output step
	Interval time.Duration `yaml:"interval"`
}

// LogConfig configures logging output
type LogConfig struct {
	// Level is the minimum level logged (debug, info, warn, error)
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Definition: "swanconfig.yaml",
			OutputDir:  "simulations",
			Filename:   "INPUT",
		},
		Run: RunConfig{
			Duration: 24 * time.Hour,
			Interval: time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Render.Definition == "" {
		return fmt.Errorf("render.definition is required")
	}
	if c.Render.OutputDir == "" {
		return fmt.Errorf("render.output_dir is required")
	}
	if c.Render.Filename == "" {
		return fmt.Errorf("render.filename is required")
	}
	if c.Run.Duration < 0 {
		return fmt.Errorf("run.duration must not be negative")
	}
	if c.Run.Interval < 0 {
		return fmt.Errorf("run.interval must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Render
	if other.Render.Definition != "" {
		c.Render.Definition = other.Render.Definition
	}
	if other.Render.OutputDir != "" {
		c.Render.OutputDir = other.Render.OutputDir
	}
	if other.Render.Filename != "" {
		c.Render.Filename = other.Render.Filename
	}

	// Run
	if !other.Run.Start.IsZero() {
		c.Run.Start = other.Run.Start
	}
	if other.Run.Duration != 0 {
		c.Run.Duration = other.Run.Duration
	}
	if other.Run.Interval != 0 {
		c.Run.Interval = other.Run.Interval
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
