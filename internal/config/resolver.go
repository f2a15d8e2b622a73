package config

import (
	"os"
	"path/filepath"
)

// FileName is the configuration file name looked up by FindPath.
const FileName = "cronfixture.yaml"

// FindPath searches for a config file in standard locations and returns
// the first that exists, or "" when there is none (defaults apply).
// Search order: ./cronfixture.yaml → $XDG_CONFIG_HOME/cronfixture/cronfixture.yaml
func FindPath() string {
	candidates := []string{FileName}

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		candidates = append(candidates, filepath.Join(xdg, "cronfixture", FileName))
	} else if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "cronfixture", FileName))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
