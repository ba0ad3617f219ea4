package command

import "time"

// Ms converts a duration to float milliseconds
func Ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Timer accumulates tick time toward a deadline
type Timer struct {
	Duration time.Duration
	elapsed  time.Duration
}

// NewTimer creates a stopped-at-zero timer for d
func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d}
}

// Advance adds dt and reports whether the deadline has passed
func (t *Timer) Advance(dt time.Duration) bool {
	t.elapsed += dt
	return t.Expired()
}

// Expired is true once elapsed reaches the duration
func (t *Timer) Expired() bool {
	return t.elapsed >= t.Duration
}

// Elapsed returns accumulated time
func (t *Timer) Elapsed() time.Duration { return t.elapsed }

// Reset restarts accumulation
func (t *Timer) Reset() { t.elapsed = 0 }
