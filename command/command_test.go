package command

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/action-command/engine"
	"github.com/lixenwraith/action-command/input"
)

// countdownGame succeeds on a press and fails after a fixed number of ticks
type countdownGame struct {
	ticksLeft int
	started   int
	ended     int
	needArg   bool
}

func (g *countdownGame) Name() string { return "countdown" }

func (g *countdownGame) Start(c *Command, args []any) error {
	if g.needArg && len(args) == 0 {
		return &ConfigurationError{Reason: "missing target", Err: ErrMissingArgument}
	}
	g.started++
	g.ticksLeft = 3
	return nil
}

func (g *countdownGame) Tick(c *Command) {
	if c.AutoComplete() || c.Pressed(input.ButtonA) {
		c.SendRank(RankNice)
		c.SendRank(RankGreat)
		c.Complete(Success)
		return
	}
	g.ticksLeft--
	if g.ticksLeft <= 0 {
		c.Complete(Failure)
	}
}

func (g *countdownGame) End() { g.ended++ }

func TestLifecycleSuccess(t *testing.T) {
	game := &countdownGame{}
	rec := NewRecorder("test")
	in := input.NewState()
	cmd := New(game, WithHandler(rec), WithInput(in), WithClock(engine.NewManualClock()))

	if cmd.AcceptingInput() {
		t.Fatal("Expected command to be idle before StartInput")
	}
	cmd.Update()
	if game.started != 0 {
		t.Fatal("Expected Update to be a no-op while idle")
	}

	if err := cmd.StartInput(); err != nil {
		t.Fatalf("StartInput failed: %v", err)
	}
	if !cmd.AcceptingInput() || cmd.State() != StateActive {
		t.Fatal("Expected command to accept input after StartInput")
	}

	in.Press(input.ButtonA)
	cmd.Update()

	if cmd.AcceptingInput() || cmd.State() != StateCompleted {
		t.Error("Expected command to stop accepting input after completion")
	}
	if res, ok := cmd.Result(); !ok || res != Success {
		t.Errorf("Expected Success result, got %v (%v)", res, ok)
	}
	if game.ended != 1 {
		t.Errorf("Expected End once, got %d", game.ended)
	}
	if rec.Count(EventRank) != 1 || rec.LastRank() != RankNice {
		t.Errorf("Expected exactly one Nice rank, got %d (%v)", rec.Count(EventRank), rec.LastRank())
	}
	if rec.Count(EventSuccess) != 1 || rec.Count(EventFailed) != 0 {
		t.Error("Expected a single success notification")
	}
	// Rank is sent before the verdict
	if rec.Events[0].Kind != EventRank || rec.Events[len(rec.Events)-1].Kind != EventSuccess {
		t.Errorf("Unexpected event order %+v", rec.Events)
	}

	cmd.Update()
	cmd.Complete(Failure)
	if rec.Count(EventFailed) != 0 {
		t.Error("Expected no notification after completion")
	}
}

func TestLifecycleFailureAndRestart(t *testing.T) {
	game := &countdownGame{}
	rec := NewRecorder("test")
	cmd := New(game, WithHandler(rec))

	for run := 1; run <= 2; run++ {
		if err := cmd.StartInput(); err != nil {
			t.Fatalf("run %d: StartInput failed: %v", run, err)
		}
		for i := 0; i < 10; i++ {
			cmd.Update()
		}
		if rec.Count(EventFailed) != run {
			t.Errorf("run %d: expected %d failures, got %d", run, run, rec.Count(EventFailed))
		}
	}
	if cmd.Runs() != 2 || game.started != 2 {
		t.Errorf("Expected two runs, got %d/%d", cmd.Runs(), game.started)
	}
}

func TestEndInputAbortsWithoutNotification(t *testing.T) {
	game := &countdownGame{}
	rec := NewRecorder("test")
	in := input.NewState()
	cmd := New(game, WithHandler(rec), WithInput(in))

	if err := cmd.StartInput(); err != nil {
		t.Fatal(err)
	}
	cmd.Update()
	cmd.EndInput()

	if cmd.AcceptingInput() {
		t.Error("Expected abort to stop input")
	}
	if game.ended != 1 {
		t.Errorf("Expected End on abort, got %d", game.ended)
	}

	in.Press(input.ButtonA)
	cmd.Update()
	cmd.Complete(Success)
	if len(rec.Events) != 0 {
		t.Errorf("Expected no handler events on an aborted run, got %+v", rec.Events)
	}
	if _, ok := cmd.Result(); ok {
		t.Error("Expected no result for an aborted run")
	}
}

func TestStartInputConfigurationError(t *testing.T) {
	game := &countdownGame{needArg: true}
	cmd := New(game)

	err := cmd.StartInput()
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigurationError, got %v", err)
	}
	if !errors.Is(err, ErrMissingArgument) {
		t.Error("Expected error to wrap ErrMissingArgument")
	}
	if cfgErr.Command != "countdown" {
		t.Errorf("Expected command name on error, got %q", cfgErr.Command)
	}
	if cmd.AcceptingInput() {
		t.Error("Expected command to stay idle after rejected start")
	}
	if err := cmd.StartInput("target"); err != nil {
		t.Errorf("Expected start with argument to succeed, got %v", err)
	}
	if err := cmd.StartInput("target"); !errors.Is(err, ErrNotIdle) {
		t.Errorf("Expected ErrNotIdle on double start, got %v", err)
	}
}

func TestAutoComplete(t *testing.T) {
	rec := NewRecorder("ai")
	cmd := New(&countdownGame{}, WithHandler(rec), WithAutoComplete(true))
	if err := cmd.StartInput(); err != nil {
		t.Fatal(err)
	}
	cmd.Update()
	if res, ok := rec.Outcome(); !ok || res != Success {
		t.Error("Expected auto complete to succeed on the first tick")
	}
}

func TestBarClamp(t *testing.T) {
	bar := NewBar(10)
	amounts := []float64{3, 4, 5, -2, 7, -30, 12, 0.5}
	for _, a := range amounts {
		bar.Fill(a, true)
		if bar.Value() < 0 || bar.Value() > bar.Max() {
			t.Fatalf("Clamp invariant violated after Fill(%v): %v", a, bar.Value())
		}
	}
	if !bar.Full() {
		t.Error("Expected bar to be full")
	}

	bar.Fill(5, false)
	if !bar.Overflowed() || bar.Value() != 15 {
		t.Errorf("Expected unclamped overflow to 15, got %v", bar.Value())
	}
	bar.Fill(-100, false)
	if bar.Value() != 0 {
		t.Errorf("Expected floor at zero, got %v", bar.Value())
	}
	empty := NewBar(0)
	if empty.Fraction() != 0 {
		t.Error("Expected zero fraction for empty capacity")
	}
}

func TestLights(t *testing.T) {
	l := NewLights(3, 100*time.Millisecond)
	l.Reset(0)
	if l.Ready(50 * time.Millisecond) {
		t.Error("Expected light gated by interval")
	}
	for i := 1; i <= 3; i++ {
		now := time.Duration(i) * 100 * time.Millisecond
		if !l.Ready(now) || !l.FillNext(now) {
			t.Fatalf("Expected light %d to fill", i)
		}
	}
	if !l.AllFilled() || l.FillNext(time.Second) {
		t.Error("Expected all lights filled and no overflow")
	}
	if l.Filled() > l.Max() {
		t.Error("Light count exceeded max")
	}
}

func TestSequenceAdvance(t *testing.T) {
	alphabet := []input.Button{input.ButtonX, input.ButtonZ, input.ButtonC}
	seq := Sequence{buttons: []input.Button{input.ButtonX, input.ButtonZ}}
	in := input.NewState()

	in.Press(input.ButtonA)
	if m := seq.Advance(in, alphabet); m != MatchNone {
		t.Errorf("Expected out-of-alphabet press to be ignored, got %v", m)
	}
	in.Commit()
	in.ReleaseAll()
	in.Commit()

	in.Press(input.ButtonX)
	if m := seq.Advance(in, alphabet); m != MatchCorrect || seq.Index() != 1 {
		t.Errorf("Expected correct match, got %v at %d", m, seq.Index())
	}
	in.Commit()
	in.ReleaseAll()
	in.Commit()

	in.Press(input.ButtonC)
	if m := seq.Advance(in, alphabet); m != MatchWrong || seq.Index() != 1 {
		t.Errorf("Expected wrong match without advancing, got %v at %d", m, seq.Index())
	}
}

func TestWindow(t *testing.T) {
	w := CenteredWindow(50, 20)
	if w.Start != 40 || w.End != 60 {
		t.Fatalf("Unexpected window %+v", w)
	}
	if !w.Contains(40) || w.Contains(60) || !w.Before(39.9) || !w.After(60) {
		t.Error("Expected half-open semantics")
	}
}

func TestRankOrder(t *testing.T) {
	order := []Rank{RankNone, RankNiceM2, RankNiceM1, RankNice, RankGood, RankGreat, RankWonderful, RankExcellent}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("Expected %v < %v", order[i-1], order[i])
		}
	}
	if r, ok := ParseRank("Great"); !ok || r != RankGreat {
		t.Error("Expected ParseRank to resolve Great")
	}
}
