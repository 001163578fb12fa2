// Package metrics provides Prometheus collectors for bibcheck runs.
package metrics

// Recorder defines a minimal interface for recording metrics, so callers can
// depend on an abstraction instead of a concrete collector.
type Recorder interface {
	// RecordOperation records an operation ("load", "render") with its status
	// ("success", "error").
	RecordOperation(operation, status string)

	// RecordDuration records the duration of an operation in seconds.
	RecordDuration(operation string, seconds float64)

	// RecordError records an error occurrence. errorType is usually the
	// error category, such as "file-parsing".
	RecordError(operation, errorType string)
}

// NopRecorder discards everything. It is used when metrics are disabled.
type NopRecorder struct{}

func (NopRecorder) RecordOperation(string, string) {}
func (NopRecorder) RecordDuration(string, float64) {}
func (NopRecorder) RecordError(string, string)     {}

var (
	_ Recorder = NopRecorder{}
	_ Recorder = (*CheckMetrics)(nil)
)
