package engine

import (
	"context"
	"time"
)

// DefaultTickInterval is ~60 updates per second
const DefaultTickInterval = 16 * time.Millisecond

// TickFunc runs one frame; returning false stops the loop
type TickFunc func(clock *TickClock) bool

// Loop drives a TickFunc at a fixed interval with drift correction
type Loop struct {
	Interval time.Duration
	Clock    *TickClock

	tickCount uint64
}

// NewLoop creates a loop at interval over clock; zero values select defaults
func NewLoop(interval time.Duration, clock *TickClock) *Loop {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if clock == nil {
		clock = NewTickClock(nil)
	}
	return &Loop{Interval: interval, Clock: clock}
}

// Ticks returns the number of frames run so far
func (l *Loop) Ticks() uint64 {
	return l.tickCount
}

// Run blocks until fn returns false or ctx is cancelled
// Returns ctx.Err() on cancellation, nil on a normal stop
func (l *Loop) Run(ctx context.Context, fn TickFunc) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	next := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		l.Clock.Tick()
		l.tickCount++
		if !fn(l.Clock) {
			return nil
		}

		// Schedule against the deadline, not the wake time, to avoid drift
		next = next.Add(l.Interval)
		wait := time.Until(next)
		if wait < 0 {
			// Fell behind; resync instead of bursting
			next = time.Now()
			wait = 0
		}
		timer.Reset(wait)
	}
}
