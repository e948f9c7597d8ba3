package printer

import "time"

// Clock provides the current time for real-time timestamps. Inject a
// [FixedClock] in tests for deterministic output.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock using the system time.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock that returns a fixed time.
type FixedClock struct {
	fixed time.Time
}

// NewFixedClock creates a FixedClock returning t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{fixed: t}
}

// SetTime updates the time returned by Now.
func (c *FixedClock) SetTime(t time.Time) {
	c.fixed = t
}

// Now returns the fixed time.
func (c *FixedClock) Now() time.Time {
	return c.fixed
}

// Compile-time check that FixedClock implements Clock.
var _ Clock = (*FixedClock)(nil)
