// Package errors wraps failures with a component, a category and a small
// bag of anonymized context so they can be logged and, when enabled,
// forwarded to telemetry without leaking file paths.
package errors

import (
	stderrors "errors"
	"maps"
	"sync"
)

// ErrorCategory groups failures by what went wrong rather than where.
type ErrorCategory string

const (
	CategoryValidation    ErrorCategory = "validation"
	CategoryFileIO        ErrorCategory = "file-io"
	CategoryFileParsing   ErrorCategory = "file-parsing"
	CategoryConfiguration ErrorCategory = "configuration"
	CategoryExport        ErrorCategory = "export"    // report rendering and writing
	CategoryMetrics       ErrorCategory = "metrics"   // metric registration and export
	CategoryTelemetry     ErrorCategory = "telemetry" // telemetry client setup
	CategoryNotification  ErrorCategory = "notification"
	CategoryGeneric       ErrorCategory = "generic"
)

// ComponentUnknown is reported when neither the caller nor the stack names a component.
const ComponentUnknown = "unknown"

// EnhancedError carries the original error together with its metadata.
// Error and Unwrap delegate to Err, so errors.Is and errors.As see through it.
type EnhancedError struct {
	Err      error
	Category ErrorCategory
	Context  map[string]any

	mu        sync.RWMutex
	component string
	reported  bool
}

func (ee *EnhancedError) Error() string {
	return ee.Err.Error()
}

func (ee *EnhancedError) Unwrap() error {
	return ee.Err
}

// Is treats two enhanced errors as equal when they share a category.
func (ee *EnhancedError) Is(target error) bool {
	if other, ok := target.(*EnhancedError); ok {
		return ee.Category == other.Category
	}
	return stderrors.Is(ee.Err, target)
}

// GetComponent returns the component resolved when the error was built.
func (ee *EnhancedError) GetComponent() string {
	ee.mu.RLock()
	defer ee.mu.RUnlock()
	return ee.component
}

// GetCategory returns the category as a plain string for log attributes.
func (ee *EnhancedError) GetCategory() string {
	return string(ee.Category)
}

// GetContext returns a copy of the attached context.
func (ee *EnhancedError) GetContext() map[string]any {
	ee.mu.RLock()
	defer ee.mu.RUnlock()
	if ee.Context == nil {
		return nil
	}
	return maps.Clone(ee.Context)
}

// MarkReported records that telemetry already saw this error.
func (ee *EnhancedError) MarkReported() {
	ee.mu.Lock()
	defer ee.mu.Unlock()
	ee.reported = true
}

// IsReported reports whether MarkReported was called.
func (ee *EnhancedError) IsReported() bool {
	ee.mu.RLock()
	defer ee.mu.RUnlock()
	return ee.reported
}

// FileError builds a file I/O failure for component with anonymized
// context about the file involved.
func FileError(component string, err error, filePath string, fileSize int64) *EnhancedError {
	return New(err).
		Component(component).
		Category(CategoryFileIO).
		FileContext(filePath, fileSize).
		Build()
}

// ValidationError builds a validation failure from a plain message.
func ValidationError(message string) *EnhancedError {
	return New(stderrors.New(message)).
		Category(CategoryValidation).
		Build()
}

// NewStd, Is, As and Join mirror the standard library so callers only
// need to import one errors package.

func NewStd(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// IsCategory reports whether err wraps an EnhancedError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	var ee *EnhancedError
	return stderrors.As(err, &ee) && ee.Category == category
}
