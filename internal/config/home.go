package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetAppsweepHome returns the appsweep home directory.
// Priority order:
//  1. APPSWEEP_HOME environment variable (if set)
//  2. .appsweep in the current working directory
//
// The directory is created if it doesn't exist.
func GetAppsweepHome() (string, error) {
	if home := os.Getenv("APPSWEEP_HOME"); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create appsweep home directory: %w", err)
		}
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	home := filepath.Join(cwd, ".appsweep")
	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create appsweep home directory: %w", err)
	}

	return home, nil
}

// GetHistoryDBPath returns the path to the run-history database, honoring
// an explicit override from configuration.
func GetHistoryDBPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	home, err := GetAppsweepHome()
	if err != nil {
		return "", fmt.Errorf("failed to get appsweep home: %w", err)
	}

	return filepath.Join(home, "history.db"), nil
}
