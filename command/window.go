package command

// Window is a half-open interval [Start, End)
type Window struct {
	Start float64 `toml:"start"`
	End   float64 `toml:"end"`
}

// CenteredWindow spans width around center
func CenteredWindow(center, width float64) Window {
	return Window{Start: center - width/2, End: center + width/2}
}

// Contains reports Start <= v < End
func (w Window) Contains(v float64) bool {
	return v >= w.Start && v < w.End
}

// Before reports v has not reached the window
func (w Window) Before(v float64) bool { return v < w.Start }

// After reports v is at or past the end
func (w Window) After(v float64) bool { return v >= w.End }

// Width returns End - Start
func (w Window) Width() float64 { return w.End - w.Start }

// Overlaps reports whether two windows share any point
func (w Window) Overlaps(o Window) bool {
	return w.Start < o.End && o.Start < w.End
}
