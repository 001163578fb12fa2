package observability

import "github.com/Kaan0029/jabref/internal/logger"

// GetLogger returns the observability package logger
func GetLogger() logger.Logger {
	return logger.Global().Module("metrics")
}
