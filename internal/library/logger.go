package library

import "github.com/Kaan0029/jabref/internal/logger"

// GetLogger returns the library package logger
func GetLogger() logger.Logger {
	return logger.Global().Module("library")
}
