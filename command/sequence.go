package command

import "github.com/lixenwraith/action-command/input"

// Match classifies the press seen while scanning an alphabet
type Match uint8

const (
	MatchNone    Match = iota // no alphabet button pressed
	MatchCorrect              // expected button pressed
	MatchWrong                // another alphabet button pressed
)

// ScanPress checks the alphabet in order; the first pressed button decides
// Buttons outside the alphabet are ignored
func ScanPress(src input.Source, alphabet []input.Button, expected input.Button) (Match, input.Button) {
	for _, b := range alphabet {
		if !src.Pressed(b) {
			continue
		}
		if b == expected {
			return MatchCorrect, b
		}
		return MatchWrong, b
	}
	return MatchNone, input.ButtonNone
}

// Sequence is an ordered list of buttons consumed front to back
type Sequence struct {
	buttons []input.Button
	index   int
}

// GenerateSequence draws n buttons uniformly from alphabet
func GenerateSequence(rng Rand, alphabet []input.Button, n int) Sequence {
	s := Sequence{buttons: make([]input.Button, 0, n)}
	for i := 0; i < n; i++ {
		s.AppendRandom(rng, alphabet)
	}
	return s
}

// AppendRandom adds one button drawn from alphabet
func (s *Sequence) AppendRandom(rng Rand, alphabet []input.Button) input.Button {
	if len(alphabet) == 0 {
		return input.ButtonNone
	}
	b := alphabet[rng.Intn(len(alphabet))]
	s.buttons = append(s.buttons, b)
	return b
}

// Expected returns the next button to press
func (s *Sequence) Expected() (input.Button, bool) {
	if s.index >= len(s.buttons) {
		return input.ButtonNone, false
	}
	return s.buttons[s.index], true
}

// Advance scans src for the expected button, moving forward on a match
func (s *Sequence) Advance(src input.Source, alphabet []input.Button) Match {
	expected, ok := s.Expected()
	if !ok {
		return MatchNone
	}
	m, _ := ScanPress(src, alphabet, expected)
	if m == MatchCorrect {
		s.index++
	}
	return m
}

// Skip consumes the expected button without input
func (s *Sequence) Skip() bool {
	if s.index >= len(s.buttons) {
		return false
	}
	s.index++
	return true
}

func (s *Sequence) Index() int { return s.index }
func (s *Sequence) Len() int { return len(s.buttons) }

// Done is true when every button was consumed
func (s *Sequence) Done() bool { return len(s.buttons) > 0 && s.index >= len(s.buttons) }

// Buttons returns a copy of the full sequence
func (s *Sequence) Buttons() []input.Button {
	out := make([]input.Button, len(s.buttons))
	copy(out, s.buttons)
	return out
}

// Clear drops the sequence
func (s *Sequence) Clear() {
	s.buttons = nil
	s.index = 0
}
