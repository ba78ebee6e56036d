package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for zpodtg.
type Paths struct {
	// ConfigFile is the path to the config file (~/.zpodtg/config.yaml).
	ConfigFile string

	// HomeDir is the zpodtg home directory (~/.zpodtg).
	HomeDir string
}

// DefaultPaths returns the default paths for zpodtg.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	tgHome := filepath.Join(homeDir, ".zpodtg")

	return &Paths{
		ConfigFile: filepath.Join(tgHome, "config.yaml"),
		HomeDir:    tgHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If ZPODTG_CONFIG is set, it takes precedence over the default.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("ZPODTG_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
