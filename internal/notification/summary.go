// Package notification sends a short summary of a check run to the services
// configured under notify.urls.
package notification

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Kaan0029/jabref/internal/consistency"
)

// maxListedTypes caps the entry types named in a message
const maxListedTypes = 10

// Summary describes the outcome of one check run
type Summary struct {
	RunID             string
	Files             []string
	Entries           int
	InconsistentTypes []string
	DeviatingEntries  int
	Duration          time.Duration
}

// NewSummary condenses a check result into a Summary
func NewSummary(runID string, files []string, entries int, result consistency.Result, duration time.Duration) Summary {
	types := result.EntryTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return Summary{
		RunID:             runID,
		Files:             files,
		Entries:           entries,
		InconsistentTypes: names,
		DeviatingEntries:  result.DeviatingEntries(),
		Duration:          duration,
	}
}

// HasFindings reports whether the run found any inconsistency
func (s Summary) HasFindings() bool {
	return len(s.InconsistentTypes) > 0
}

// Message renders the notification body. Only base names of the input
// files are included.
func (s Summary) Message() string {
	var b strings.Builder

	names := make([]string, len(s.Files))
	for i, f := range s.Files {
		names[i] = filepath.Base(f)
	}
	fmt.Fprintf(&b, "Checked %d entries from %s in %s.\n",
		s.Entries, strings.Join(names, ", "), s.Duration.Round(time.Millisecond))

	if !s.HasFindings() {
		b.WriteString("No field inconsistencies found.")
	} else {
		listed := s.InconsistentTypes
		more := 0
		if len(listed) > maxListedTypes {
			more = len(listed) - maxListedTypes
			listed = listed[:maxListedTypes]
		}
		fmt.Fprintf(&b, "%d entries deviate across %d entry types: %s",
			s.DeviatingEntries, len(s.InconsistentTypes), strings.Join(listed, ", "))
		if more > 0 {
			fmt.Fprintf(&b, " and %d more", more)
		}
		b.WriteString(".")
	}

	if s.RunID != "" {
		fmt.Fprintf(&b, "\nRun %s", s.RunID)
	}
	return b.String()
}
