package config

import (
	"os"
	"path/filepath"
)

const appName = "timelineviewer"

// Paths holds resolved filesystem paths.
type Paths struct {
	ConfigFile string
	ConfigDir  string
}

// ResolvePaths returns the resolved filesystem paths for the current platform.
func ResolvePaths() *Paths {
	configDir := getConfigDir()
	return &Paths{
		ConfigFile: filepath.Join(configDir, "config.yaml"),
		ConfigDir:  configDir,
	}
}

// getConfigDir honours XDG_CONFIG_HOME on Linux through os.UserConfigDir.
func getConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, appName)
}
