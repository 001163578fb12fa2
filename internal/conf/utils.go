// utils.go - config path helpers
package conf

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

// GetDefaultConfigPaths returns the directories searched for bibcheck.yaml,
// in priority order. The working directory always comes first.
func GetDefaultConfigPaths() []string {
	paths := []string{"."}

	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, AppName))
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		dotDir := filepath.Join(homeDir, ".config", AppName)
		if !slices.Contains(paths, dotDir) {
			paths = append(paths, dotDir)
		}
	}

	if runtime.GOOS != "windows" {
		paths = append(paths, filepath.Join("/etc", AppName))
	}

	return paths
}

// isValidLogLevel reports whether level names a known log level. "warning"
// is accepted as an alias of "warn".
func isValidLogLevel(level string) bool {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return true
	}
	return slices.Contains(ValidLogLevels, level)
}
