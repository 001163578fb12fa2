// Package spinner draws a single-line progress indicator on a terminal
package spinner

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/term"
)

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
	clearLine  = "\r\033[K"
)

// Spinner struct holds the spinner state
type Spinner struct {
	mu      sync.Mutex
	out     io.Writer
	frames  []string
	index   int
	started bool
}

// IsTerminal reports whether out is attached to a terminal. Pipes, files
// and in-memory writers are not.
func IsTerminal(out io.Writer) bool {
	f, ok := out.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewSpinner creates a spinner writing to out, normally os.Stderr
func NewSpinner(out io.Writer) *Spinner {
	// Braille arrow
	return &Spinner{
		out: out,
		frames: []string{
			"⣀⣀ ",
			"⣄⣀ ",
			"⣤⣀ ",
			"⣦⣄ ",
			"⣶⣤ ",
			"⣿⣦ ",
			"⣿⣷ ",
			"⣿⣿ ",
			"⣿⣿ ",
			"⣷⣿ ",
			"⣦⣿ ",
			"⣤⣷ ",
			"⣄⣦ ",
			"⣀⣤ ",
			"⣀⣄ ",
			"⣀⣀ ",
		},
	}
}

// Update advances the spinner to the next frame and prints it with msg.
func (s *Spinner) Update(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		fmt.Fprint(s.out, hideCursor)
		s.started = true
	}
	fmt.Fprintf(s.out, "%s%s%s", clearLine, s.frames[s.index], msg)

	s.index++
	if s.index >= len(s.frames) {
		s.index = 0
	}
}

// Progress reports the index-th of total steps. Its signature matches the
// progress callback of a consistency check.
func (s *Spinner) Progress(index, total int) {
	s.Update(fmt.Sprintf("checking entry type %d/%d", index+1, total))
}

// Cleanup clears the spinner line and shows the cursor. It does nothing if
// the spinner was never drawn.
func (s *Spinner) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	fmt.Fprint(s.out, clearLine+showCursor)
	s.started = false
	s.index = 0
}
