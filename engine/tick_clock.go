package engine

import "time"

// TickClock converts provider readings into per-tick clocks
// Elapsed is the delta between the last two Tick calls, Active the time since the first
type TickClock struct {
	provider TimeProvider

	start   time.Time
	last    time.Time
	elapsed time.Duration
	started bool

	// MaxElapsed caps a single tick delta so a stalled frame cannot skip a whole window
	MaxElapsed time.Duration
}

// NewTickClock creates a clock over provider; nil selects the monotonic provider
func NewTickClock(provider TimeProvider) *TickClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &TickClock{provider: provider}
}

// Tick samples the provider, call once per frame before updates
func (c *TickClock) Tick() {
	now := c.provider.Now()
	if !c.started {
		c.start = now
		c.last = now
		c.started = true
		c.elapsed = 0
		return
	}

	c.elapsed = now.Sub(c.last)
	if c.elapsed < 0 {
		c.elapsed = 0
	}
	if c.MaxElapsed > 0 && c.elapsed > c.MaxElapsed {
		c.elapsed = c.MaxElapsed
	}
	c.last = now
}

// Elapsed returns time since the previous tick
func (c *TickClock) Elapsed() time.Duration {
	return c.elapsed
}

// Active returns time since the first tick
func (c *TickClock) Active() time.Duration {
	if !c.started {
		return 0
	}
	return c.last.Sub(c.start)
}
