// Package discovery locates the registry file for the current directory.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adoptaverse/pawmatch/internal/storage"
)

// FindRegistry walks from startDir toward the filesystem root looking
// for a registry file. Returns the path and whether one was found.
func FindRegistry(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		path := filepath.Join(dir, storage.RegistryDir, storage.RegistryFile)
		if _, err := os.Stat(path); err == nil {
			return path, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", false, nil
}

// GlobalRegistryPath is the per-user fallback registry location.
func GlobalRegistryPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, storage.RegistryDir, storage.RegistryFile)
}

// LedgerPath returns the adoption ledger path for a given registry path.
// The ledger always sits next to the registry.
func LedgerPath(registryPath string) string {
	return filepath.Join(filepath.Dir(registryPath), storage.LedgerFile)
}
