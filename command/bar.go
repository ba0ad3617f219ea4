package command

// Bar is a continuous progress value in [0, max]
// Unclamped fills may overshoot max; the value never drops below zero
type Bar struct {
	cur float64
	max float64
}

// NewBar creates an empty bar
func NewBar(max float64) Bar {
	return Bar{max: max}
}

// Fill adds a signed amount; clamp caps the result at max
func (b *Bar) Fill(amount float64, clamp bool) {
	b.cur += amount
	if b.cur < 0 {
		b.cur = 0
	}
	if clamp && b.cur > b.max {
		b.cur = b.max
	}
}

// Set replaces the value under the same rules as Fill
func (b *Bar) Set(value float64, clamp bool) {
	b.cur = 0
	b.Fill(value, clamp)
}

func (b *Bar) Value() float64 { return b.cur }
func (b *Bar) Max() float64 { return b.max }

// Full is true once the value reaches max
func (b *Bar) Full() bool { return b.cur >= b.max }

// Overflowed is true once an unclamped fill passed max
func (b *Bar) Overflowed() bool { return b.cur > b.max }

// Fraction returns value/max, zero for an empty-capacity bar
func (b *Bar) Fraction() float64 {
	if b.max <= 0 {
		return 0
	}
	return b.cur / b.max
}

// Reset empties the bar
func (b *Bar) Reset() { b.cur = 0 }
