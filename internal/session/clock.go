package session

import (
	"fmt"
	"time"
)

// Clock is the pausable stopwatch for the current question's active window.
// It is reset at question start, paused on submit, and resumed only when
// grading fails. The screen layer ticks once per second and re-reads
// Elapsed; the clock itself keeps no goroutine.
type Clock struct {
	now     func() time.Time
	start   time.Time
	paused  time.Duration // elapsed recorded at the moment of pause
	running bool
}

// NewClock returns a stopped clock.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// newClockAt returns a clock using the given time source. Test hook.
func newClockAt(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Start records the current instant and clears any paused accumulation.
func (c *Clock) Start() {
	c.start = c.now()
	c.paused = 0
	c.running = true
}

// Pause freezes the elapsed value. Calling Pause on a paused clock is a no-op.
func (c *Clock) Pause() {
	if !c.running {
		return
	}
	c.paused = c.now().Sub(c.start)
	c.running = false
}

// Resume continues from the paused value by recomputing a synthetic start
// instant. Calling Resume on a running clock is a no-op.
func (c *Clock) Resume() {
	if c.running {
		return
	}
	c.start = c.now().Add(-c.paused)
	c.running = true
}

// Running reports whether the clock is ticking.
func (c *Clock) Running() bool {
	return c.running
}

// Elapsed returns the time spent on the current question, excluding any
// interval during which the clock was paused.
func (c *Clock) Elapsed() time.Duration {
	if !c.running {
		return c.paused
	}
	return c.now().Sub(c.start)
}

// Display returns the elapsed time as zero-padded MM:SS.
func (c *Clock) Display() string {
	return FormatElapsed(c.Elapsed())
}

// FormatElapsed renders a duration as zero-padded MM:SS, flooring to whole
// seconds.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
