package notification

import "github.com/Kaan0029/jabref/internal/logger"

// GetLogger returns the notification package logger
func GetLogger() logger.Logger {
	return logger.Global().Module("notification")
}
