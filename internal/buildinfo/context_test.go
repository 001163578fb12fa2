package buildinfo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextAccessors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctx         *Context
		wantVersion string
		wantDate    string
		wantCommit  string
	}{
		{"nil context", nil, unknown, unknown, unknown},
		{"empty context", &Context{}, unknown, unknown, unknown},
		{"pre-release", &Context{Version: "1.0.0-beta.1", BuildDate: "2026-01-01"}, "1.0.0-beta.1", "2026-01-01", unknown},
		{"long commit", &Context{Version: "1.0.0", Commit: "0123456789abcdef0123"}, "1.0.0", unknown, "0123456789ab"},
		{"short commit", &Context{Commit: "abc123"}, unknown, unknown, "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantVersion, tt.ctx.GetVersion())
			assert.Equal(t, tt.wantDate, tt.ctx.GetBuildDate())
			assert.Equal(t, tt.wantCommit, tt.ctx.GetCommit())
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	c := New("2.1.0", "2026-10-01T12:00:00Z")
	assert.Equal(t, "2.1.0", c.GetVersion())
	assert.Equal(t, "2026-10-01T12:00:00Z", c.GetBuildDate())
	assert.Equal(t, "bibcheck@2.1.0", c.Release())
}

func TestString(t *testing.T) {
	t.Parallel()

	s := (&Context{Version: "1.2.3", BuildDate: "today", Commit: "deadbeef"}).String()
	assert.True(t, strings.HasPrefix(s, "bibcheck 1.2.3 (commit deadbeef, built today, "))
	assert.Contains(t, s, runtime.Version())
	assert.Equal(t, "bibcheck@unknown", (*Context)(nil).Release())
}
