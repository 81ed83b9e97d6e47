// Package main provides a schema diagnostics tool for the Collections
// database. It prints every table with its columns and a few sample rows,
// which is the first thing to check when the exporter reports a schema it
// does not recognize.
package main

import (
	"flag"
	"fmt"
	"os"

	"collex/internal/collections"
	"collex/internal/logger"
	"collex/internal/profile"
	"collex/pkg/fsutil"
)

func main() {
	dbPath := flag.String("db", "", "Path to the Edge Collections database (default: auto-detect)")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")

	flag.Parse()

	log := logger.NewLogger(*level)

	if err := run(log, *dbPath); err != nil {
		log.Error(fmt.Sprintf("❌ %v", err))
		os.Exit(1)
	}
}

func run(log *logger.Logger, dbOverride string) error {
	source := dbOverride
	if source == "" {
		detected, err := profile.CollectionsDBPath()
		if err != nil {
			return fmt.Errorf("cannot locate the Collections database: %w (pass -db explicitly)", err)
		}

		source = detected
	}

	log.Info(fmt.Sprintf("📍 Inspecting: %s", source))

	snapshot, cleanup, err := fsutil.Snapshot(source)
	if err != nil {
		return fmt.Errorf("failed to snapshot the database: %w", err)
	}
	defer cleanup()

	db, err := collections.OpenSnapshot(snapshot)
	if err != nil {
		return err
	}
	defer db.Close()

	collections.DumpSchema(db, log)

	return nil
}
