package errors

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ErrorBuilder assembles an EnhancedError step by step.
type ErrorBuilder struct {
	err       error
	component string
	category  ErrorCategory
	context   map[string]any
}

// New starts a builder around err.
func New(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// Newf starts a builder around a formatted error.
func Newf(format string, args ...any) *ErrorBuilder {
	return New(fmt.Errorf(format, args...))
}

func (eb *ErrorBuilder) Component(component string) *ErrorBuilder {
	eb.component = component
	return eb
}

func (eb *ErrorBuilder) Category(category ErrorCategory) *ErrorBuilder {
	eb.category = category
	return eb
}

// Context attaches a single key/value pair.
func (eb *ErrorBuilder) Context(key string, value any) *ErrorBuilder {
	if eb.context == nil {
		eb.context = make(map[string]any)
	}
	eb.context[key] = value
	return eb
}

// FileContext records the shape of a path and size, never the path itself.
func (eb *ErrorBuilder) FileContext(filePath string, fileSize int64) *ErrorBuilder {
	if filePath != "" {
		eb.Context("file_type", pathKind(filePath))
		eb.Context("file_extension", extensionOf(filePath))
	}
	if fileSize > 0 {
		eb.Context("file_size_category", sizeBucket(fileSize))
	}
	return eb
}

// Timing records how long the failing operation ran.
func (eb *ErrorBuilder) Timing(operation string, duration time.Duration) *ErrorBuilder {
	eb.Context("operation", operation)
	eb.Context("duration_ms", duration.Milliseconds())
	return eb
}

// Build finalizes the error. Stack walking and category guessing only
// happen while a telemetry reporter is active.
func (eb *ErrorBuilder) Build() *EnhancedError {
	ee := &EnhancedError{
		Err:       eb.err,
		Category:  eb.category,
		Context:   eb.context,
		component: eb.component,
	}

	if !hasActiveReporting.Load() {
		if ee.component == "" {
			ee.component = ComponentUnknown
		}
		if ee.Category == "" {
			ee.Category = CategoryGeneric
		}
		return ee
	}

	if ee.component == "" {
		ee.component = detectComponent()
	}
	if ee.Category == "" {
		ee.Category = detectCategory(eb.err, ee.component)
	}
	reportToTelemetry(ee)
	return ee
}

func pathKind(path string) string {
	if strings.ContainsAny(path, `/\`) {
		return "absolute-path"
	}
	return "relative-path"
}

func extensionOf(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == "." || ext == base {
		return "none"
	}
	return strings.ToLower(ext[1:])
}

func sizeBucket(size int64) string {
	const kib = 1024
	switch {
	case size < kib:
		return "tiny"
	case size < kib*kib:
		return "small"
	case size < 10*kib*kib:
		return "medium"
	case size < 100*kib*kib:
		return "large"
	default:
		return "very-large"
	}
}
