package errors

import (
	stderrors "errors"
	"runtime"
	"strings"
	"sync"
)

const errorsPackagePath = "github.com/Kaan0029/jabref/internal/errors"

var (
	registryMu sync.RWMutex
	// package path fragment -> component name
	componentRegistry = map[string]string{
		"internal/library":       "library",
		"internal/report":        "report",
		"internal/conf":          "configuration",
		"internal/consistency":   "consistency",
		"internal/observability": "metrics",
		"internal/notification":  "notification",
		"cmd/check":              "cli.check",
	}
)

// detectComponent returns the component of the first registered caller
// outside this package.
func detectComponent() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, errorsPackagePath) {
			if component, ok := lookupComponent(frame.Function); ok {
				return component
			}
		}
		if !more {
			return ComponentUnknown
		}
	}
}

func lookupComponent(funcName string) (string, bool) {
	if funcName == "" {
		return "", false
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	for fragment, component := range componentRegistry {
		if strings.Contains(funcName, fragment) {
			return component, true
		}
	}
	return "", false
}

// detectCategory guesses a category for errors built without one.
func detectCategory(err error, component string) ErrorCategory {
	if err == nil {
		return CategoryGeneric
	}

	var inner *EnhancedError
	if stderrors.As(err, &inner) && inner.Category != "" {
		return inner.Category
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "parse"), strings.Contains(msg, "syntax"):
		return CategoryFileParsing
	case strings.Contains(msg, "file"), strings.Contains(msg, "open"), strings.Contains(msg, "read"):
		return CategoryFileIO
	case strings.Contains(msg, "invalid"), strings.Contains(msg, "unsupported"):
		return CategoryValidation
	}

	switch component {
	case "configuration":
		return CategoryConfiguration
	case "report":
		return CategoryExport
	case "metrics":
		return CategoryMetrics
	case "notification":
		return CategoryNotification
	default:
		return CategoryGeneric
	}
}
