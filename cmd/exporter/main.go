// Package main provides the Edge Collections to Chrome bookmarks exporter.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"collex/internal/bookmarks"
	"collex/internal/collections"
	"collex/internal/config"
	"collex/internal/logger"
	"collex/internal/profile"
	"collex/pkg/fsutil"
	"collex/pkg/report"
)

const defaultConfigPath = "configs/exporter.yaml"

func main() {
	dbPath := flag.String("db", "", "Path to the Edge Collections database (default: auto-detect)")
	outputPath := flag.String("output", "", "Output bookmarks file (default: chrome_bookmarks_import.html)")
	configFile := flag.String("config", "", "Path to YAML configuration file")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	cfg := loadConfig(*configFile)
	log := logger.NewLogger(cfg.Exporter.Logging.Level)

	if err := run(cfg, log, *dbPath, *outputPath); err != nil {
		if errors.Is(err, collections.ErrDatabaseNotFound) {
			log.Error(fmt.Sprintf("❌ %v", err))
			fmt.Println("\nPlease make sure Microsoft Edge is installed and you have created some Collections.")
		} else {
			log.Error(fmt.Sprintf("❌ Export failed: %v", err))
		}

		os.Exit(1)
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		// Try default location
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	if path == "" {
		return config.DefaultConfig()
	}

	fmt.Printf("⚙️  Loading configuration from: %s\n", path)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Printf("⚠️  Failed to load config: %v (proceeding with defaults)\n", err)

		return config.DefaultConfig()
	}

	return cfg
}

func run(cfg *config.Config, log *logger.Logger, dbOverride, outputOverride string) error {
	source, err := resolveSource(cfg, dbOverride)
	if err != nil {
		return err
	}

	log.Info("🚀 Starting Edge Collections export")
	log.Info(fmt.Sprintf("📍 Source: %s", source))

	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("%w: %s", collections.ErrDatabaseNotFound, source)
	}

	// The live database may be locked by a running browser; read a snapshot.
	snapshot, cleanup, err := fsutil.Snapshot(source)
	if err != nil {
		return fmt.Errorf("failed to snapshot the live database: %w", err)
	}
	defer cleanup()

	log.Info("Phase 1: Reading collections...")

	reader := collections.NewReader(cfg.Exporter.Labels, log)

	lib, err := reader.Read(snapshot)
	if err != nil {
		return err
	}

	if lib.IsEmpty() {
		log.Warn("No collections found!")

		return nil
	}

	log.Info(fmt.Sprintf("✅ Found %d collection(s), %d item(s)", len(lib.Collections), lib.ItemCount()))
	fmt.Println()
	fmt.Println(report.Breakdown(lib))
	fmt.Println()

	log.Info("Phase 2: Writing bookmarks...")

	document := bookmarks.Serialize(lib)

	output := outputOverride
	if output == "" {
		output = cfg.Exporter.Output.Path
	}

	if err := os.WriteFile(output, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	absOutput, err := filepath.Abs(output)
	if err != nil {
		absOutput = output
	}

	log.Info(fmt.Sprintf("✅ Export completed: %s", absOutput))
	printImportInstructions(absOutput)

	return nil
}

// resolveSource picks the database path: flag, then config, then the
// platform default.
func resolveSource(cfg *config.Config, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if cfg.Exporter.Source.Database != "" {
		return cfg.Exporter.Source.Database, nil
	}

	path, err := profile.CollectionsDBPath()
	if err != nil {
		return "", fmt.Errorf("cannot locate the Collections database: %w (pass -db explicitly)", err)
	}

	return path, nil
}

func printImportInstructions(path string) {
	fmt.Println("\nTo import into Chrome:")
	fmt.Println("1. Open Chrome and press Ctrl+Shift+O (or go to chrome://bookmarks/)")
	fmt.Println("2. Click the three dots menu (⋮) in the top right")
	fmt.Println("3. Select 'Import bookmarks'")
	fmt.Printf("4. Choose the file: %s\n", path)
}

func printUsage() {
	fmt.Println("Usage: ./bin/exporter [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/exporter")
	fmt.Println("  ./bin/exporter -db /path/to/collectionsSQLite -output bookmarks.html")
}
