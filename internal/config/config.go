// Package config provides configuration management for the exporter.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingOutputPath = errors.New("output.path is required")
	ErrMissingLabel      = errors.New("labels must not be empty")
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete exporter configuration.
type Config struct {
	Exporter ExporterConfig `yaml:"exporter"`
}

// ExporterConfig contains exporter-specific settings.
type ExporterConfig struct {
	Source  SourceConfig  `yaml:"source"`
	Output  OutputConfig  `yaml:"output"`
	Labels  LabelsConfig  `yaml:"labels"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig points at the browser database to export from.
type SourceConfig struct {
	// Database overrides the auto-detected Collections database path.
	Database string `yaml:"database"`
}

// OutputConfig defines where the bookmarks file is written.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// LabelsConfig holds the placeholder labels used when the source record
// carries no usable name or title.
type LabelsConfig struct {
	UnnamedCollection string `yaml:"unnamed_collection"`
	UntitledItem      string `yaml:"untitled_item"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Exporter: ExporterConfig{
			Output: OutputConfig{
				Path: "chrome_bookmarks_import.html",
			},
			Labels: LabelsConfig{
				UnnamedCollection: "Unnamed Collection",
				UntitledItem:      "Untitled",
			},
			Logging: LoggingConfig{
				Level: "info",
			},
		},
	}
}

// LoadConfig loads configuration from a YAML file. Fields left empty in the
// file keep their default values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Exporter.Output.Path == "" {
		c.Exporter.Output.Path = defaults.Exporter.Output.Path
	}

	if c.Exporter.Labels.UnnamedCollection == "" {
		c.Exporter.Labels.UnnamedCollection = defaults.Exporter.Labels.UnnamedCollection
	}

	if c.Exporter.Labels.UntitledItem == "" {
		c.Exporter.Labels.UntitledItem = defaults.Exporter.Labels.UntitledItem
	}

	if c.Exporter.Logging.Level == "" {
		c.Exporter.Logging.Level = defaults.Exporter.Logging.Level
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Exporter.Output.Path == "" {
		return ErrMissingOutputPath
	}

	if c.Exporter.Labels.UnnamedCollection == "" || c.Exporter.Labels.UntitledItem == "" {
		return ErrMissingLabel
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Exporter.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Source: %q, Output: %q, Level: %s}",
		c.Exporter.Source.Database,
		c.Exporter.Output.Path,
		c.Exporter.Logging.Level,
	)
}
