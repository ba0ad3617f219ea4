package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldTimeout keeps a key held between terminal auto-repeat events
const DefaultHoldTimeout = 120 * time.Millisecond

// DefaultRepeatGap is the longest spacing still read as auto-repeat
// Typical terminals repeat every 30-50ms once repeating starts
const DefaultRepeatGap = 60 * time.Millisecond

// Terminal adapts tcell key events into a Source
// Terminals report presses and repeats but no releases, so a button stays held
// while events keep arriving within the hold timeout. An event arriving later
// than the repeat gap is a new keystroke and fires a press edge even while held
type Terminal struct {
	keys        *KeyMap
	holdTimeout time.Duration
	repeatGap   time.Duration

	lastSeen [ButtonCount]time.Duration
	seen     [ButtonCount]bool
	pending  [ButtonCount]bool
	strike   [ButtonCount]bool
	pressed  [ButtonCount]bool

	state State
}

// NewTerminal creates an adapter using keys; nil selects DefaultKeyMap
// Non-positive durations select the defaults; repeatGap is capped at holdTimeout
func NewTerminal(keys *KeyMap, holdTimeout, repeatGap time.Duration) *Terminal {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	if holdTimeout <= 0 {
		holdTimeout = DefaultHoldTimeout
	}
	if repeatGap <= 0 {
		repeatGap = DefaultRepeatGap
	}
	if repeatGap > holdTimeout {
		repeatGap = holdTimeout
	}
	return &Terminal{keys: keys, holdTimeout: holdTimeout, repeatGap: repeatGap}
}

// HandleKey records a key event observed at run time now
// Returns false when the key maps to no button
func (t *Terminal) HandleKey(ev *tcell.EventKey, now time.Duration) bool {
	b := t.keys.Lookup(ev)
	if !b.Valid() {
		return false
	}
	if !t.seen[b] || !t.state.Held(b) || now-t.lastSeen[b] > t.repeatGap {
		t.strike[b] = true
	}
	t.lastSeen[b] = now
	t.seen[b] = true
	t.pending[b] = true
	return true
}

// Sync resolves levels and press edges for the tick at time now
// Call once per tick before the command update
func (t *Terminal) Sync(now time.Duration) {
	t.state.Commit()
	for b := ButtonUp; b < ButtonCount; b++ {
		down := t.pending[b] || (t.seen[b] && now-t.lastSeen[b] <= t.holdTimeout)
		t.state.Set(b, down)
	}
	t.pressed = t.strike
	t.pending = [ButtonCount]bool{}
	t.strike = [ButtonCount]bool{}
}

func (t *Terminal) Held(b Button) bool { return t.state.Held(b) }

func (t *Terminal) Pressed(b Button) bool { return b.Valid() && t.pressed[b] }
