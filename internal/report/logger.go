package report

import "github.com/Kaan0029/jabref/internal/logger"

// GetLogger returns the report package logger
func GetLogger() logger.Logger {
	return logger.Global().Module("report")
}
