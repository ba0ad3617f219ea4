package input

// Source answers button queries for the current tick
// Held is level-triggered, Pressed is true only on the tick the button went down
type Source interface {
	Held(b Button) bool
	Pressed(b Button) bool
}

// None is a Source with nothing held
type None struct{}

func (None) Held(Button) bool { return false }
func (None) Pressed(Button) bool { return false }
