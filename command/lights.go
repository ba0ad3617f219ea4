package command

import "time"

// Lights is a discrete counter gated by a minimum interval between fills
type Lights struct {
	filled   int
	max      int
	interval time.Duration
	lastAt   time.Duration
}

// NewLights creates an unlit set of max lights
func NewLights(max int, interval time.Duration) Lights {
	return Lights{max: max, interval: interval}
}

// Reset clears all lights and starts the interval at now
func (l *Lights) Reset(now time.Duration) {
	l.filled = 0
	l.lastAt = now
}

// Ready reports whether the interval since the last fill has passed
func (l *Lights) Ready(now time.Duration) bool {
	return now-l.lastAt >= l.interval
}

// FillNext lights one more light at now; false when all are already lit
func (l *Lights) FillNext(now time.Duration) bool {
	if l.filled >= l.max {
		return false
	}
	l.filled++
	l.lastAt = now
	return true
}

func (l *Lights) Filled() int { return l.filled }
func (l *Lights) Max() int { return l.max }
func (l *Lights) Interval() time.Duration { return l.interval }
func (l *Lights) LastFilledAt() time.Duration { return l.lastAt }

// AllFilled is true when every light is lit
func (l *Lights) AllFilled() bool { return l.filled == l.max }
