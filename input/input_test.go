package input

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestStateEdges(t *testing.T) {
	s := NewState()
	s.Press(ButtonA)
	if !s.Pressed(ButtonA) || !s.Held(ButtonA) {
		t.Fatal("Expected press edge on first tick")
	}
	s.Commit()
	if s.Pressed(ButtonA) {
		t.Error("Expected no press edge while still held")
	}
	if !s.Held(ButtonA) {
		t.Error("Expected button to stay held")
	}
	s.Release(ButtonA)
	if !s.Released(ButtonA) {
		t.Error("Expected release edge")
	}
	s.Commit()
	if s.Released(ButtonA) || s.Held(ButtonA) {
		t.Error("Expected idle button after commit")
	}
	if s.Held(ButtonNone) || s.Pressed(ButtonCount) {
		t.Error("Expected invalid buttons to read false")
	}
}

func TestParseButton(t *testing.T) {
	b, err := ParseButton(" X ")
	if err != nil || b != ButtonX {
		t.Errorf("Expected ButtonX, got %v (%v)", b, err)
	}
	if _, err := ParseButton("start"); err == nil {
		t.Error("Expected error for unknown button")
	}
	var u Button
	if err := u.UnmarshalText([]byte("left")); err != nil || u != ButtonLeft {
		t.Errorf("Expected ButtonLeft from text, got %v (%v)", u, err)
	}
}

func TestTerminalHoldEmulation(t *testing.T) {
	term := NewTerminal(nil, 100*time.Millisecond, 0)
	press := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)

	if !term.HandleKey(press, 0) {
		t.Fatal("Expected 'x' to be mapped")
	}
	term.Sync(0)
	if !term.Pressed(ButtonX) {
		t.Error("Expected press edge on the first event")
	}

	// Repeat inside the timeout keeps the key held without a new edge
	term.HandleKey(press, 50*time.Millisecond)
	term.Sync(60 * time.Millisecond)
	if !term.Held(ButtonX) || term.Pressed(ButtonX) {
		t.Error("Expected held without new edge during repeat")
	}

	term.Sync(200 * time.Millisecond)
	if term.Held(ButtonX) {
		t.Error("Expected release after hold timeout")
	}

	term.HandleKey(press, 250*time.Millisecond)
	term.Sync(250 * time.Millisecond)
	if !term.Pressed(ButtonX) {
		t.Error("Expected new press edge after release")
	}

	if term.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), 0) {
		t.Error("Expected unmapped key to be ignored")
	}
}

// feedKeys delivers events stamped at times, syncing every tick until end
// and returns the number of ticks that saw a press edge on b
func feedKeys(term *Terminal, ev *tcell.EventKey, times []time.Duration, tick, end time.Duration, b Button) int {
	presses := 0
	next := 0
	for now := time.Duration(0); now <= end; now += tick {
		for next < len(times) && times[next] <= now {
			term.HandleKey(ev, times[next])
			next++
		}
		term.Sync(now)
		if term.Pressed(b) {
			presses++
		}
	}
	return presses
}

func TestTerminalMashEdges(t *testing.T) {
	space := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)

	// Separate keystrokes at 10Hz each land inside the hold timeout
	var strokes []time.Duration
	for i := 0; i <= 10; i++ {
		strokes = append(strokes, time.Duration(i)*100*time.Millisecond)
	}
	term := NewTerminal(nil, DefaultHoldTimeout, DefaultRepeatGap)
	if got := feedKeys(term, space, strokes, 16*time.Millisecond, 1100*time.Millisecond, ButtonA); got != len(strokes) {
		t.Errorf("Expected %d presses at 10Hz, got %d", len(strokes), got)
	}

	// Auto-repeat every 30ms is one long hold
	var repeats []time.Duration
	for i := 0; i <= 10; i++ {
		repeats = append(repeats, time.Duration(i)*30*time.Millisecond)
	}
	term = NewTerminal(nil, DefaultHoldTimeout, DefaultRepeatGap)
	held := 0
	presses := 0
	next := 0
	for now := time.Duration(0); now <= 300*time.Millisecond; now += 16 * time.Millisecond {
		for next < len(repeats) && repeats[next] <= now {
			term.HandleKey(space, repeats[next])
			next++
		}
		term.Sync(now)
		if term.Pressed(ButtonA) {
			presses++
		}
		if term.Held(ButtonA) {
			held++
		}
	}
	if presses != 1 {
		t.Errorf("Expected a single press for auto-repeat, got %d", presses)
	}
	if held == 0 {
		t.Error("Expected button held through auto-repeat")
	}
}

func TestLoadKeyMap(t *testing.T) {
	doc := `
[keys]
w = "up"
space = "b"
Enter = "none"
`
	km, err := LoadKeyMap(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadKeyMap failed: %v", err)
	}
	if km.Runes['w'] != ButtonUp {
		t.Errorf("Expected w bound to up, got %v", km.Runes['w'])
	}
	if km.Runes[' '] != ButtonB {
		t.Errorf("Expected space rebound to b, got %v", km.Runes[' '])
	}
	if _, ok := km.Special[tcell.KeyEnter]; ok {
		t.Error("Expected enter to be unbound")
	}
	if km.Special[tcell.KeyUp] != ButtonUp {
		t.Error("Expected defaults to survive")
	}

	if _, err := LoadKeyMap(strings.NewReader("[keys]\nw = \"jump\"\n")); err == nil {
		t.Error("Expected error for unknown button")
	}
	if _, err := LoadKeyMap(strings.NewReader("[keys]\nbogus-key = \"a\"\n")); err == nil {
		t.Error("Expected error for unknown key name")
	}
}
