package commands

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/engine"
	"github.com/lixenwraith/action-command/input"
)

// rig drives a command with a scripted clock and button trace
type rig struct {
	clock *engine.ManualClock
	in    *input.State
	rec   *command.Recorder
	cmd   *command.Command
}

func newRig(game command.Game, opts ...command.Option) *rig {
	r := &rig{
		clock: engine.NewManualClock(),
		in:    input.NewState(),
		rec:   command.NewRecorder("test"),
	}
	base := []command.Option{
		command.WithClock(r.clock),
		command.WithInput(r.in),
		command.WithHandler(r.rec),
		command.WithSeed(1),
	}
	r.cmd = command.New(game, append(base, opts...)...)
	return r
}

// tick runs one frame of length d with exactly the given buttons down
func (r *rig) tick(d time.Duration, held ...input.Button) {
	r.in.ReleaseAll()
	for _, b := range held {
		r.in.Press(b)
	}
	r.clock.Advance(d)
	r.cmd.Update()
	r.in.Commit()
}

func (r *rig) start(t *testing.T, args ...any) {
	t.Helper()
	if err := r.cmd.StartInput(args...); err != nil {
		t.Fatalf("StartInput failed: %v", err)
	}
}

func (r *rig) expectOutcome(t *testing.T, want command.Result) {
	t.Helper()
	got, ok := r.rec.Outcome()
	if !ok {
		t.Fatalf("Expected %v, run still open (state %v)", want, r.cmd.State())
	}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if r.cmd.AcceptingInput() {
		t.Error("Expected command to stop accepting input after completion")
	}
	if n := r.rec.Count(command.EventSuccess) + r.rec.Count(command.EventFailed); n != 1 {
		t.Errorf("Expected exactly one terminal notification, got %d", n)
	}
}

func TestMashButtonScenario(t *testing.T) {
	cfg := MashButtonConfig{MaxBarValue: 10, AmountPerPress: 2, TimeToFill: time.Second, Button: input.ButtonA}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	game := NewMashButton(cfg)
	r := newRig(game)
	r.start(t)

	for i := 0; i < 5; i++ {
		r.tick(50*time.Millisecond, input.ButtonA)
		if i < 4 {
			r.tick(50 * time.Millisecond)
		}
	}

	r.expectOutcome(t, command.Success)
	if r.rec.LastRank() != command.RankGood {
		t.Errorf("Expected rank Good, got %v", r.rec.LastRank())
	}
}

func TestMashButtonDeadline(t *testing.T) {
	cfg := MashButtonConfig{MaxBarValue: 10, AmountPerPress: 2, TimeToFill: time.Second, Button: input.ButtonA}
	r := newRig(NewMashButton(cfg))
	r.start(t)

	r.tick(100*time.Millisecond, input.ButtonA)
	for i := 0; i < 10 && r.cmd.AcceptingInput(); i++ {
		r.tick(100 * time.Millisecond)
	}
	r.expectOutcome(t, command.Failure)
	if r.cmd.RankSent() {
		t.Error("Expected no rank on a failed mash")
	}
}

func TestMashButtonBarStaysClamped(t *testing.T) {
	cfg := MashButtonConfig{MaxBarValue: 10, AmountPerPress: 3, TimeToFill: time.Second, Button: input.ButtonA}
	game := NewMashButton(cfg)
	r := newRig(game)
	r.start(t)

	for r.cmd.AcceptingInput() {
		r.tick(10*time.Millisecond, input.ButtonA)
		if p := game.Progress(); p < 0 || p > 1 {
			t.Fatalf("Expected progress in [0, 1], got %f", p)
		}
		r.tick(10 * time.Millisecond)
	}
	if game.bar.Value() > cfg.MaxBarValue {
		t.Errorf("Expected bar <= %f, got %f", cfg.MaxBarValue, game.bar.Value())
	}
}

func TestGulpScenario(t *testing.T) {
	cfg := GulpConfig{TotalDuration: time.Second, SuccessRange: 200 * time.Millisecond, SpeedScale: 1, Button: input.ButtonLeft}

	tests := []struct {
		name    string
		holdFor int // ticks of 50ms
		want    command.Result
		rank    command.Rank
	}{
		{"release inside window", 17, command.Success, command.RankNice},
		{"release early", 14, command.Failure, command.RankNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(NewGulp(cfg))
			r.start(t)
			for i := 0; i < tt.holdFor; i++ {
				r.tick(50*time.Millisecond, input.ButtonLeft)
			}
			r.tick(50 * time.Millisecond)

			r.expectOutcome(t, tt.want)
			if r.rec.LastRank() != tt.rank {
				t.Errorf("Expected rank %v, got %v", tt.rank, r.rec.LastRank())
			}
			responses := r.rec.Responses()
			if len(responses) != 1 {
				t.Fatalf("Expected one release response, got %d", len(responses))
			}
			if v := responses[0].(float64); v != float64(tt.holdFor*50) {
				t.Errorf("Expected release value %d, got %f", tt.holdFor*50, v)
			}
		})
	}
}

func TestGulpHeldTooLong(t *testing.T) {
	cfg := GulpConfig{TotalDuration: time.Second, SuccessRange: 200 * time.Millisecond, SpeedScale: 1, Button: input.ButtonLeft}
	r := newRig(NewGulp(cfg))
	r.start(t)
	for i := 0; i < 25 && r.cmd.AcceptingInput(); i++ {
		r.tick(50*time.Millisecond, input.ButtonLeft)
	}
	r.expectOutcome(t, command.Failure)
}

func TestGulpAutoComplete(t *testing.T) {
	r := newRig(NewGulp(DefaultGulpConfig()), command.WithAutoComplete(true))
	r.start(t)
	for i := 0; i < 100 && r.cmd.AcceptingInput(); i++ {
		r.tick(10 * time.Millisecond)
	}
	r.expectOutcome(t, command.Success)
}

func TestAirLiftRanks(t *testing.T) {
	tests := []struct {
		fill float64
		want command.Rank
	}{
		{1, command.RankGreat},
		{0.7, command.RankGood},
		{0.4, command.RankNice},
		{0.1, command.RankNone},
	}
	for _, tt := range tests {
		if got := airLiftRank(tt.fill); got != tt.want {
			t.Errorf("airLiftRank(%f): Expected %v, got %v", tt.fill, tt.want, got)
		}
	}
}

func TestAirLiftDrainsToFailure(t *testing.T) {
	cfg := AirLiftConfig{MaxBarValue: 10, AmountPerPress: 5, DecelerationPerSecond: 100, Duration: 500 * time.Millisecond, Button: input.ButtonA}
	r := newRig(NewAirLift(cfg))
	r.start(t)
	r.tick(10*time.Millisecond, input.ButtonA)
	for i := 0; i < 10 && r.cmd.AcceptingInput(); i++ {
		r.tick(100 * time.Millisecond)
	}
	r.expectOutcome(t, command.Failure)
}

func TestRallyWinkAlternates(t *testing.T) {
	cfg := DefaultRallyWinkConfig()
	cfg.MaxBarValue = 4
	cfg.AmountPerPress = 1
	cfg.DecelerationPerSecond = 0
	r := newRig(NewRallyWink(cfg))
	r.start(t)

	// repeating the same button does not fill
	r.tick(10*time.Millisecond, cfg.First)
	r.tick(10 * time.Millisecond)
	r.tick(10*time.Millisecond, cfg.First)
	r.tick(10 * time.Millisecond)
	if r.cmd.State() != command.StateActive {
		t.Fatal("Expected run to continue")
	}

	for _, b := range []input.Button{cfg.Second, cfg.First, cfg.Second} {
		r.tick(10*time.Millisecond, b)
		r.tick(10 * time.Millisecond)
	}
	r.expectOutcome(t, command.Success)
}

func TestHammerHoldAndRelease(t *testing.T) {
	cfg := HammerConfig{
		MaxLights:         3,
		TimeBetweenLights: 100 * time.Millisecond,
		StartTimeout:      time.Second,
		HoldTimeout:       500 * time.Millisecond,
		Button:            input.ButtonLeft,
	}
	game := NewHammer(cfg)
	r := newRig(game)
	r.start(t)

	for i := 0; i < 4; i++ {
		r.tick(100*time.Millisecond, input.ButtonLeft)
	}
	if game.Lights() != 3 {
		t.Fatalf("Expected 3 lights, got %d", game.Lights())
	}
	r.tick(100 * time.Millisecond)

	r.expectOutcome(t, command.Success)
	if !reflect.DeepEqual(r.rec.Responses(), []any{1, 2, 3}) {
		t.Errorf("Expected light responses [1 2 3], got %v", r.rec.Responses())
	}
}

func TestHammerEarlyReleaseAndOverhold(t *testing.T) {
	cfg := HammerConfig{
		MaxLights:         3,
		TimeBetweenLights: 100 * time.Millisecond,
		StartTimeout:      time.Second,
		HoldTimeout:       200 * time.Millisecond,
		Button:            input.ButtonLeft,
	}

	r := newRig(NewHammer(cfg))
	r.start(t)
	r.tick(100*time.Millisecond, input.ButtonLeft)
	r.tick(100*time.Millisecond, input.ButtonLeft)
	r.tick(100 * time.Millisecond)
	r.expectOutcome(t, command.Failure)

	r = newRig(NewHammer(cfg))
	r.start(t)
	for i := 0; i < 10 && r.cmd.AcceptingInput(); i++ {
		r.tick(100*time.Millisecond, input.ButtonLeft)
	}
	r.expectOutcome(t, command.Failure)
}

func TestTimedLightEvenWindows(t *testing.T) {
	const maxBar = 1000.0
	for n := 1; n <= 8; n++ {
		lightRange := maxBar/float64(n+1) - 1
		windows := LightWindows(maxBar, n, lightRange, DistributionEven)
		if len(windows) != n {
			t.Fatalf("Expected %d windows, got %d", n, len(windows))
		}
		for i := 1; i < n; i++ {
			prev, cur := windows[i-1], windows[i]
			if cur.Start <= prev.Start {
				t.Errorf("n=%d: Expected window %d to start after %d", n, i, i-1)
			}
			if prev.Overlaps(cur) {
				t.Errorf("n=%d: Expected windows %d and %d not to overlap", n, i-1, i)
			}
		}
	}
}

func TestTimedLightRun(t *testing.T) {
	cfg := TimedLightConfig{MaxBarValue: 1000, NumLights: 3, LightRange: 100, SpeedScale: 1, Button: input.ButtonA}
	game := NewTimedLight(cfg)
	r := newRig(game)
	r.start(t)

	// centers at 250, 500, 750
	for _, at := range []int{25, 50, 75} {
		for game.bar.Value() < float64(at*10-10) {
			r.tick(10 * time.Millisecond)
		}
		r.tick(10*time.Millisecond, input.ButtonA)
	}
	r.expectOutcome(t, command.Success)
	if r.rec.LastRank() != command.RankNice {
		t.Errorf("Expected rank Nice, got %v", r.rec.LastRank())
	}
	if !reflect.DeepEqual(r.rec.Responses(), []any{1, 2, 3}) {
		t.Errorf("Expected light responses [1 2 3], got %v", r.rec.Responses())
	}
}

func TestTimedLightEarlyPressFails(t *testing.T) {
	cfg := TimedLightConfig{MaxBarValue: 1000, NumLights: 3, LightRange: 100, SpeedScale: 1, Button: input.ButtonA}
	r := newRig(NewTimedLight(cfg))
	r.start(t)
	r.tick(10*time.Millisecond, input.ButtonA)
	r.expectOutcome(t, command.Failure)
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"mash", MashButtonConfig{}.Validate()},
		{"gulp", GulpConfig{TotalDuration: time.Second, SuccessRange: 2 * time.Second, SpeedScale: 1, Button: input.ButtonA}.Validate()},
		{"multi", MultiButtonConfig{MinButtons: 4, MaxButtons: 2, InputDuration: time.Second, Buttons: input.SequenceButtons}.Validate()},
		{"power lift", PowerLiftConfig{Rows: 3, Cols: 3, Duration: time.Second, Threshold: 5, Button: input.ButtonA}.Validate()},
		{"art attack", ArtAttackConfig{Duration: time.Second, Speed: 1, SegmentEvery: 0}.Validate()},
		{"bomb squad no auto throw", func() error {
			cfg := DefaultBombSquadConfig()
			cfg.AutoThrowAfter = 0
			return cfg.Validate()
		}()},
		{"run away still cursor", func() error {
			cfg := DefaultRunAwayConfig()
			cfg.CursorSpeed = 0
			return cfg.Validate()
		}()},
		{"power lift no poison", func() error {
			cfg := DefaultPowerLiftConfig()
			cfg.PoisonDuration = 0
			return cfg.Validate()
		}()},
	}
	for _, tt := range tests {
		if tt.err == nil {
			t.Errorf("%s: Expected validation error", tt.name)
			continue
		}
		if !errors.Is(tt.err, command.ErrInvalidArgument) {
			t.Errorf("%s: Expected ErrInvalidArgument, got %v", tt.name, tt.err)
		}
	}
}
