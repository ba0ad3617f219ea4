package input

// State tracks held buttons across ticks and derives press edges
// Owner sets levels for the tick, runs the update, then calls Commit
type State struct {
	cur  [ButtonCount]bool
	prev [ButtonCount]bool
}

// NewState creates a State with all buttons up
func NewState() *State {
	return &State{}
}

// Set updates the level of a button for the current tick
func (s *State) Set(b Button, down bool) {
	if b.Valid() {
		s.cur[b] = down
	}
}

// Press marks b as held
func (s *State) Press(b Button) { s.Set(b, true) }

// Release marks b as up
func (s *State) Release(b Button) { s.Set(b, false) }

// ReleaseAll lifts every button
func (s *State) ReleaseAll() {
	s.cur = [ButtonCount]bool{}
}

// Held returns the current level
func (s *State) Held(b Button) bool {
	return b.Valid() && s.cur[b]
}

// Pressed returns true when b went down since the last Commit
func (s *State) Pressed(b Button) bool {
	return b.Valid() && s.cur[b] && !s.prev[b]
}

// Released returns true when b went up since the last Commit
func (s *State) Released(b Button) bool {
	return b.Valid() && !s.cur[b] && s.prev[b]
}

// Commit ends the tick; current levels become the edge baseline
func (s *State) Commit() {
	s.prev = s.cur
}
