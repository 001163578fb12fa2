package check

import "github.com/Kaan0029/jabref/internal/logger"

// GetLogger returns the check command logger
func GetLogger() logger.Logger {
	return logger.Global().Module("check")
}
