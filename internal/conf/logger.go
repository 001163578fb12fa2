package conf

import "github.com/Kaan0029/jabref/internal/logger"

// GetLogger returns the config package logger. It is fetched on every call
// so it picks up the global logger installed after configuration is loaded.
func GetLogger() logger.Logger {
	return logger.Global().Module("config")
}
