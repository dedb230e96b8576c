package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/errors"
)

// GlobalConfigDir returns the path to the global taskdeck configuration directory.
// This is typically ~/.taskdeck on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.TaskdeckHome), nil
}

// ProjectConfigDir returns the relative path to the project configuration directory.
func ProjectConfigDir() string {
	return constants.TaskdeckHome
}

// GlobalConfigPath returns the full path to the global configuration file.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// ProjectConfigPath returns the relative path to the project configuration file.
func ProjectConfigPath() string {
	return filepath.Join(ProjectConfigDir(), constants.GlobalConfigName)
}
