package monitor

import "time"

// Clock supplies the current instant to the time logger. Injecting it keeps
// elapsed-time logic testable without real waits; time.Time carries a
// monotonic reading when obtained from the system clock, so differences are
// immune to wall-clock adjustments.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the default Clock backed by time.Now.
var SystemClock Clock = systemClock{}

// ManualClock is a Clock advanced explicitly by the caller. Useful in tests.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a ManualClock starting at the given instant.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now implements Clock.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
