package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "exporter.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Exporter.Output.Path != "chrome_bookmarks_import.html" {
		t.Errorf("Output.Path = %q, want chrome_bookmarks_import.html", cfg.Exporter.Output.Path)
	}

	if cfg.Exporter.Labels.UnnamedCollection != "Unnamed Collection" {
		t.Errorf("UnnamedCollection = %q, want Unnamed Collection", cfg.Exporter.Labels.UnnamedCollection)
	}

	if cfg.Exporter.Labels.UntitledItem != "Untitled" {
		t.Errorf("UntitledItem = %q, want Untitled", cfg.Exporter.Labels.UntitledItem)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
exporter:
  source:
    database: /tmp/collectionsSQLite
  output:
    path: out.html
  logging:
    level: debug
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Exporter.Source.Database != "/tmp/collectionsSQLite" {
		t.Errorf("Source.Database = %q, want /tmp/collectionsSQLite", cfg.Exporter.Source.Database)
	}

	if cfg.Exporter.Output.Path != "out.html" {
		t.Errorf("Output.Path = %q, want out.html", cfg.Exporter.Output.Path)
	}

	if cfg.Exporter.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Exporter.Logging.Level)
	}

	// Fields missing from the file keep their defaults.
	if cfg.Exporter.Labels.UnnamedCollection != "Unnamed Collection" {
		t.Errorf("UnnamedCollection = %q, want default", cfg.Exporter.Labels.UnnamedCollection)
	}
}

func TestLoadConfig_PartialFile(t *testing.T) {
	path := writeConfigFile(t, `
exporter:
  labels:
    untitled_item: "(untitled)"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Exporter.Labels.UntitledItem != "(untitled)" {
		t.Errorf("UntitledItem = %q, want (untitled)", cfg.Exporter.Labels.UntitledItem)
	}

	if cfg.Exporter.Output.Path != "chrome_bookmarks_import.html" {
		t.Errorf("Output.Path = %q, want default", cfg.Exporter.Output.Path)
	}

	if cfg.Exporter.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Exporter.Logging.Level)
	}
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	path := writeConfigFile(t, `
exporter:
  logging:
    level: loud
`)

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrInvalidLogLevel) {
		t.Errorf("Expected ErrInvalidLogLevel, got %v", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "exporter: [not: a: mapping")

	_, err := LoadConfig(path)
	if err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
