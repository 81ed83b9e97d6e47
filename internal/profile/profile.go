// Package profile locates the source browser's Collections database.
package profile

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// ErrNoDefaultPath indicates the Collections database location could not be
// derived from the environment.
var ErrNoDefaultPath = errors.New("no default Collections database location for this platform")

// CollectionsDBPath returns the default location of the Edge Collections
// database for the current platform. Callers with non-default profiles pass
// an explicit path instead.
func CollectionsDBPath() (string, error) {
	const suffix = "collectionsSQLite"

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			return "", ErrNoDefaultPath
		}

		return filepath.Join(localAppData,
			"Microsoft", "Edge", "User Data", "Default", "Collections", suffix), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", ErrNoDefaultPath
		}

		return filepath.Join(home,
			"Library", "Application Support", "Microsoft Edge", "Default", "Collections", suffix), nil
	case "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", ErrNoDefaultPath
		}

		return filepath.Join(home,
			".config", "microsoft-edge", "Default", "Collections", suffix), nil
	default:
		return "", ErrNoDefaultPath
	}
}
