package cmd

import "time"

// telemetryFlushTimeout bounds how long exit waits for queued Sentry events
const telemetryFlushTimeout = 2 * time.Second

// Process exit codes
const (
	ExitOK       = 0
	ExitError    = 1
	ExitFindings = 2
)
