// Package fsutil provides filesystem helpers for working with locked
// profile databases.
package fsutil

import (
	"fmt"
	"io"
	"os"
)

// Snapshot copies src into a temporary file and returns the copy's path
// together with a cleanup function that removes it. A running browser keeps
// the live database locked, so all reads go through the snapshot; callers
// must defer the cleanup so the copy never outlives the process.
func Snapshot(src string) (string, func(), error) {
	in, err := os.Open(src)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp("", "collections-*.db")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create snapshot file: %w", err)
	}

	path := tmp.Name()
	cleanup := func() {
		os.Remove(path)
	}

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		cleanup()

		return "", nil, fmt.Errorf("failed to copy database snapshot: %w", err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()

		return "", nil, fmt.Errorf("failed to finalize database snapshot: %w", err)
	}

	return path, cleanup, nil
}
