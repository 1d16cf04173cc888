package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// EnvConfigPath names the environment variable holding an explicit path.
	EnvConfigPath = "HAMCYCLE_CONFIG"
	// ConfigFileName is looked up in the working directory.
	ConfigFileName = "hamcycle.yaml"
	// ConfigDirName is the directory under the XDG config roots.
	ConfigDirName = "hamcycle"
)

// FindConfigPath returns the first existing config file, or "".
func FindConfigPath() string {
	// 1. Explicit environment variable
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	// 2. Working directory
	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	// 3. XDG config home and system dirs
	if path, err := xdg.SearchConfigFile(filepath.Join(ConfigDirName, "config.yaml")); err == nil {
		return path
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
