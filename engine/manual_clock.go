package engine

import "time"

// ManualClock is a scripted clock for deterministic runs and tests
type ManualClock struct {
	elapsed time.Duration
	active  time.Duration
}

// NewManualClock creates a clock at zero
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Advance starts a new tick lasting d
func (c *ManualClock) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.elapsed = d
	c.active += d
}

// Elapsed returns the duration of the current tick
func (c *ManualClock) Elapsed() time.Duration {
	return c.elapsed
}

// Active returns the sum of all ticks
func (c *ManualClock) Active() time.Duration {
	return c.active
}
