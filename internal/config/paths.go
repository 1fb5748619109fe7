// ABOUTME: Standard filesystem paths for spomo configuration
// ABOUTME: Resolves ~/.spomo/ and the default config file inside it

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".spomo"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.spomo/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// GlobalConfigFile returns the path to the default config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
