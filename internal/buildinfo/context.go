// Package buildinfo holds build-time metadata injected through ldflags
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

// Context contains build-time metadata that is not user-configurable
type Context struct {
	// Version holds the Git version tag from build
	Version string

	// BuildDate is the time when the binary was built
	BuildDate string

	// Commit is the VCS revision, read from the embedded build info when
	// not set through ldflags
	Commit string
}

// New returns a Context for the given ldflags values, filling the commit
// from the module build info.
func New(version, buildDate string) *Context {
	c := &Context{Version: version, BuildDate: buildDate}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				c.Commit = s.Value
				break
			}
		}
	}
	return c
}

// GetVersion returns the version or "unknown"
func (c *Context) GetVersion() string {
	if c == nil || c.Version == "" {
		return unknown
	}
	return c.Version
}

// GetBuildDate returns the build date or "unknown"
func (c *Context) GetBuildDate() string {
	if c == nil || c.BuildDate == "" {
		return unknown
	}
	return c.BuildDate
}

// GetCommit returns the short VCS revision or "unknown"
func (c *Context) GetCommit() string {
	if c == nil || c.Commit == "" {
		return unknown
	}
	if len(c.Commit) > 12 {
		return c.Commit[:12]
	}
	return c.Commit
}

// Release returns the identifier reported to Sentry, e.g. bibcheck@1.2.0
func (c *Context) Release() string {
	return "bibcheck@" + c.GetVersion()
}

// String renders the version line printed by the version command
func (c *Context) String() string {
	return fmt.Sprintf("bibcheck %s (commit %s, built %s, %s %s/%s)",
		c.GetVersion(), c.GetCommit(), c.GetBuildDate(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
