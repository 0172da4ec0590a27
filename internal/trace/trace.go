// Package trace ports the teacher's recast.BuildContext: an optional sink
// for progress messages and named timers that the triangulation driver and
// the CLI share, rather than reaching for a global logger. Passing nil
// disables both logging and timing.
package trace

import (
	"fmt"
	"time"
)

// Category classifies a logged message.
type Category int

const (
	Progress Category = 1 + iota
	Warning
)

const maxMessages = 1000

// Context accumulates progress messages and named timers behind an
// enable/disable flag, mirroring recast.BuildContext.
type Context struct {
	enabled  bool
	messages []string

	starts map[string]time.Time
	totals map[string]time.Duration
}

// New returns a Context. Pass enabled=false to build a Context whose
// Progressf/Warningf/StartTimer/StopTimer calls are all no-ops.
func New(enabled bool) *Context {
	return &Context{
		enabled: enabled,
		starts:  make(map[string]time.Time),
		totals:  make(map[string]time.Duration),
	}
}

// Progressf logs a progress message.
func (c *Context) Progressf(format string, args ...interface{}) {
	c.log(Progress, format, args...)
}

// Warningf logs a warning message.
func (c *Context) Warningf(format string, args ...interface{}) {
	c.log(Warning, format, args...)
}

func (c *Context) log(cat Category, format string, args ...interface{}) {
	if c == nil || !c.enabled || len(c.messages) >= maxMessages {
		return
	}
	prefix := "PROG "
	if cat == Warning {
		prefix = "WARN "
	}
	c.messages = append(c.messages, prefix+fmt.Sprintf(format, args...))
}

// Messages returns the accumulated log messages.
func (c *Context) Messages() []string {
	if c == nil {
		return nil
	}
	return c.messages
}

// StartTimer starts (or restarts) the named timer.
func (c *Context) StartTimer(label string) {
	if c == nil || !c.enabled {
		return
	}
	c.starts[label] = time.Now()
}

// StopTimer stops the named timer and accumulates its elapsed duration.
func (c *Context) StopTimer(label string) {
	if c == nil || !c.enabled {
		return
	}
	start, ok := c.starts[label]
	if !ok {
		return
	}
	c.totals[label] += time.Since(start)
}

// Elapsed returns the accumulated duration of the named timer.
func (c *Context) Elapsed(label string) time.Duration {
	if c == nil || !c.enabled {
		return 0
	}
	return c.totals[label]
}
