// Package errors - telemetry integration (optional)
package errors

import (
	"fmt"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
)

// TelemetryReporter is an interface for reporting errors to telemetry systems
type TelemetryReporter interface {
	ReportError(err *EnhancedError)
	IsEnabled() bool
}

// SentryReporter implements TelemetryReporter for Sentry
type SentryReporter struct {
	enabled bool
}

// NewSentryReporter creates a new Sentry telemetry reporter
func NewSentryReporter(enabled bool) *SentryReporter {
	return &SentryReporter{enabled: enabled}
}

// InitSentry initializes the Sentry client. The release string is attached to
// every event so reports can be grouped by build.
func InitSentry(dsn, release string) error {
	if dsn == "" {
		return New(NewStd("sentry DSN is empty")).
			Component("telemetry").
			Category(CategoryTelemetry).
			Build()
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          release,
		AttachStacktrace: false,
		// Never send local variables, hostnames or paths beyond what we scrub
		SendDefaultPII: false,
	}); err != nil {
		return New(fmt.Errorf("sentry init failed: %w", err)).
			Component("telemetry").
			Category(CategoryTelemetry).
			Build()
	}
	return nil
}

// FlushTelemetry waits up to timeout for queued events to be delivered.
func FlushTelemetry(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// IsEnabled returns whether Sentry telemetry is enabled
func (sr *SentryReporter) IsEnabled() bool {
	return sr != nil && sr.enabled
}

// ReportError reports an enhanced error to Sentry with privacy protection
func (sr *SentryReporter) ReportError(ee *EnhancedError) {
	if !sr.IsEnabled() || ee == nil || ee.IsReported() {
		return
	}

	scrubbedMessage := scrubMessageForPrivacy(fmt.Sprintf("[%s] %s", ee.Category, ee.Err.Error()))
	component := ee.GetComponent()

	sentry.WithScope(func(scope *sentry.Scope) {
		errorTitle := generateErrorTitle(component, ee.Category)

		scope.SetTag("error_title", errorTitle)
		scope.SetTag("component", component)
		scope.SetTag("category", string(ee.Category))
		scope.SetTag("error_type", fmt.Sprintf("%T", ee.Err))

		for key, value := range ee.GetContext() {
			if strValue, ok := value.(string); ok {
				value = scrubMessageForPrivacy(strValue)
			}
			scope.SetContext(key, map[string]any{"value": value})
		}

		level := getErrorLevel(ee.Category)
		scope.SetLevel(level)
		scope.SetFingerprint([]string{errorTitle, component, string(ee.Category)})

		event := sentry.NewEvent()
		event.Message = scrubbedMessage
		event.Level = level
		event.Exception = []sentry.Exception{{
			Type:  errorTitle,
			Value: scrubbedMessage,
		}}

		sentry.CaptureEvent(event)
	})

	ee.MarkReported()
}

// generateErrorTitle creates a grouping title such as "library File Parsing Error"
func generateErrorTitle(component string, category ErrorCategory) string {
	title := formatCategoryForTitle(category)
	if component == "" || component == ComponentUnknown {
		return title
	}
	return component + " " + title
}

// formatCategoryForTitle converts error categories to human-readable titles
func formatCategoryForTitle(category ErrorCategory) string {
	switch category {
	case CategoryValidation:
		return "Validation Error"
	case CategoryFileIO:
		return "File I/O Error"
	case CategoryFileParsing:
		return "File Parsing Error"
	case CategoryConfiguration:
		return "Configuration Error"
	case CategoryExport:
		return "Export Error"
	case CategoryMetrics:
		return "Metrics Error"
	case CategoryTelemetry:
		return "Telemetry Error"
	default:
		return "Error"
	}
}

// getErrorLevel returns appropriate Sentry level based on category
func getErrorLevel(category ErrorCategory) sentry.Level {
	switch category {
	case CategoryFileIO, CategoryFileParsing, CategoryValidation:
		return sentry.LevelWarning // Usually bad input, not a defect
	default:
		return sentry.LevelError
	}
}

var (
	reporterMu              sync.RWMutex
	globalTelemetryReporter TelemetryReporter
	hasActiveReporting      atomic.Bool
)

// SetTelemetryReporter sets the global telemetry reporter. Passing nil
// disables reporting and restores the fast error-building path.
func SetTelemetryReporter(reporter TelemetryReporter) {
	reporterMu.Lock()
	defer reporterMu.Unlock()
	globalTelemetryReporter = reporter
	hasActiveReporting.Store(reporter != nil && reporter.IsEnabled())
}

// GetTelemetryReporter returns the current telemetry reporter
func GetTelemetryReporter() TelemetryReporter {
	reporterMu.RLock()
	defer reporterMu.RUnlock()
	return globalTelemetryReporter
}

// reportToTelemetry reports an error to the configured telemetry system
func reportToTelemetry(ee *EnhancedError) {
	reporter := GetTelemetryReporter()
	if reporter != nil && reporter.IsEnabled() {
		reporter.ReportError(ee)
	}
}

// Pre-compiled scrubbing patterns
var (
	homePathRegex = regexp.MustCompile(`(/home/|/Users/|[A-Za-z]:\\Users\\)[^/\\\s]+`)
	urlQueryRegex = regexp.MustCompile(`(https?://[^?\s]+)\?\S*`)
	apiKeyRegex   = regexp.MustCompile(`(?i)(api[_-]?key|token|auth)[=:]\S+`)
	longHexRegex  = regexp.MustCompile(`[0-9a-fA-F]{32,}`)
)

// scrubMessageForPrivacy removes user names from paths, URL query strings
// and anything that looks like a credential.
func scrubMessageForPrivacy(message string) string {
	scrubbed := homePathRegex.ReplaceAllString(message, "${1}[USER]")
	scrubbed = urlQueryRegex.ReplaceAllString(scrubbed, "$1?[REDACTED]")
	scrubbed = apiKeyRegex.ReplaceAllString(scrubbed, "[API_KEY_REDACTED]")
	return longHexRegex.ReplaceAllString(scrubbed, "[API_KEY_REDACTED]")
}
