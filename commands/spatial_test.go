package commands

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
	"github.com/lixenwraith/action-command/vmath"
)

func TestJumpWindow(t *testing.T) {
	cfg := JumpConfig{WindowStart: 100 * time.Millisecond, WindowEnd: 200 * time.Millisecond, Button: input.ButtonA}

	tests := []struct {
		name    string
		pressAt int // ticks of 50ms, 0 means never
		want    command.Result
	}{
		{"inside", 3, command.Success},
		{"too early", 1, command.Failure},
		{"closing edge", 4, command.Failure},
		{"never", 0, command.Failure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(NewJump(cfg))
			r.start(t)
			for i := 1; i <= 10 && r.cmd.AcceptingInput(); i++ {
				if i == tt.pressAt {
					r.tick(50*time.Millisecond, input.ButtonA)
				} else {
					r.tick(50 * time.Millisecond)
				}
			}
			r.expectOutcome(t, tt.want)
			if (tt.want == command.Success) != (r.rec.LastRank() == command.RankNice) {
				t.Errorf("Expected rank Nice only on success, got %v", r.rec.LastRank())
			}
		})
	}
}

func TestTattleTarget(t *testing.T) {
	cfg := TattleConfig{StartPosition: vmath.V(0, 0), TravelTime: time.Second, SuccessRadius: 8, Button: input.ButtonA}

	r := newRig(NewTattle(cfg))
	r.start(t, vmath.V(100, 0))
	r.tick(500 * time.Millisecond)
	r.tick(500*time.Millisecond, input.ButtonA)
	r.expectOutcome(t, command.Success)

	target := vmath.V(100, 0)
	r = newRig(NewTattle(cfg))
	r.start(t, &target)
	r.tick(500*time.Millisecond, input.ButtonA)
	r.expectOutcome(t, command.Failure)
}

func TestTattleOvershoot(t *testing.T) {
	cfg := TattleConfig{StartPosition: vmath.V(0, 0), TravelTime: time.Second, SuccessRadius: 8, Button: input.ButtonA}
	game := NewTattle(cfg)
	r := newRig(game)
	r.start(t, vmath.V(100, 0))

	r.tick(time.Second)
	if !r.cmd.AcceptingInput() {
		t.Fatal("Expected run to stay open while the cursor is on target")
	}
	r.tick(200 * time.Millisecond)
	r.expectOutcome(t, command.Failure)
}

func TestTattleRequiresTarget(t *testing.T) {
	r := newRig(NewTattle(DefaultTattleConfig()))

	err := r.cmd.StartInput()
	var cfgErr *command.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigurationError, got %v", err)
	}
	if !errors.Is(err, command.ErrMissingArgument) {
		t.Errorf("Expected ErrMissingArgument, got %v", err)
	}
	if cfgErr.Command != "Tattle" {
		t.Errorf("Expected command name Tattle, got %q", cfgErr.Command)
	}
	if r.cmd.State() != command.StateIdle {
		t.Errorf("Expected idle state, got %v", r.cmd.State())
	}

	if err := r.cmd.StartInput("north"); !errors.Is(err, command.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for wrong type, got %v", err)
	}
	var nilTarget *vmath.Vec2
	if err := r.cmd.StartInput(nilTarget); !errors.Is(err, command.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for nil target, got %v", err)
	}
	if len(r.rec.Events) != 0 {
		t.Errorf("Expected no handler events, got %v", r.rec.Events)
	}
}

func TestShellShieldRanges(t *testing.T) {
	game := NewShellShield(DefaultShellShieldConfig())
	r := newRig(game)
	r.start(t)

	// cursor starts at MaxValue
	r.tick(0, input.ButtonA)
	r.expectOutcome(t, command.Success)
	if r.rec.LastRank() != command.RankExcellent {
		t.Errorf("Expected rank Excellent, got %v", r.rec.LastRank())
	}
	if resp := r.rec.Responses(); len(resp) != 1 || resp[0] != 4 {
		t.Errorf("Expected shield value 4, got %v", resp)
	}
}

func TestShellShieldEmptyTable(t *testing.T) {
	cfg := DefaultShellShieldConfig()
	cfg.Ranges = nil
	r := newRig(NewShellShield(cfg))
	r.start(t)
	r.tick(10 * time.Millisecond)
	r.expectOutcome(t, command.Failure)
}

func TestShellShieldDeadline(t *testing.T) {
	cfg := DefaultShellShieldConfig()
	cfg.Ranges = []ShieldRange{{Range: command.Window{Start: 1000, End: 2000}, Value: 1}}
	r := newRig(NewShellShield(cfg))
	r.start(t)
	for i := 0; i < 100 && r.cmd.AcceptingInput(); i++ {
		r.tick(100*time.Millisecond, input.ButtonA)
		r.tick(100 * time.Millisecond)
	}
	r.expectOutcome(t, command.Failure)
}

func TestBombSquadAutoComplete(t *testing.T) {
	cfg := DefaultBombSquadConfig()
	game := NewBombSquad(cfg)
	r := newRig(game, command.WithAutoComplete(true))
	r.start(t)

	for i := 0; i < cfg.BombCount; i++ {
		r.tick(10 * time.Millisecond)
	}
	if game.Thrown() != cfg.BombCount {
		t.Fatalf("Expected %d bombs thrown, got %d", cfg.BombCount, game.Thrown())
	}
	for i := 0; i < 100 && r.cmd.AcceptingInput(); i++ {
		r.tick(100 * time.Millisecond)
	}
	r.expectOutcome(t, command.Success)

	responses := r.rec.Responses()
	if len(responses) != cfg.BombCount {
		t.Fatalf("Expected %d throw responses, got %d", cfg.BombCount, len(responses))
	}
	for i, resp := range responses {
		throw, ok := resp.(Throw)
		if !ok {
			t.Fatalf("Expected Throw response, got %T", resp)
		}
		if throw.Index != i {
			t.Errorf("Expected throw index %d, got %d", i, throw.Index)
		}
		if throw.Angle < cfg.Orbit.MinAngle || throw.Angle > cfg.Orbit.MaxAngle {
			t.Errorf("Expected angle within orbit, got %f", throw.Angle)
		}
	}
}

func TestBombSquadIdleRunEnds(t *testing.T) {
	cfg := DefaultBombSquadConfig()
	game := NewBombSquad(cfg)
	r := newRig(game)
	r.start(t)

	for i := 0; i < 1000 && r.cmd.AcceptingInput(); i++ {
		r.tick(16 * time.Millisecond)
	}
	r.expectOutcome(t, command.Success)
	if game.Thrown() != cfg.BombCount {
		t.Errorf("Expected %d automatic throws, got %d", cfg.BombCount, game.Thrown())
	}
}

func TestOrbitCursorStaysInArc(t *testing.T) {
	cfg := DefaultOrbitConfig()
	o := newOrbitCursor(cfg)
	for i := 0; i < 500; i++ {
		o.step(37 * time.Millisecond)
		if o.angle < cfg.MinAngle || o.angle > cfg.MaxAngle {
			t.Fatalf("step %d: angle %f left [%f, %f]", i, o.angle, cfg.MinAngle, cfg.MaxAngle)
		}
	}
	o.step(10 * time.Second)
	if o.angle < cfg.MinAngle || o.angle > cfg.MaxAngle {
		t.Errorf("Expected long step to reflect into the arc, got %f", o.angle)
	}
}

func TestMashButtonRangeAutoComplete(t *testing.T) {
	r := newRig(NewMashButtonRange(DefaultMashButtonRangeConfig()), command.WithAutoComplete(true))
	r.start(t)
	for i := 0; i < 1000 && r.cmd.AcceptingInput(); i++ {
		r.tick(16 * time.Millisecond)
	}
	r.expectOutcome(t, command.Success)
	if r.rec.LastRank() != command.RankNice {
		t.Errorf("Expected rank Nice, got %v", r.rec.LastRank())
	}
}

func TestRunAwayOutcome(t *testing.T) {
	r := newRig(NewRunAway(DefaultRunAwayConfig()), command.WithAutoComplete(true))
	r.start(t)
	for i := 0; i < 1000 && r.cmd.AcceptingInput(); i++ {
		r.tick(16 * time.Millisecond)
	}
	r.expectOutcome(t, command.Success)

	r = newRig(NewRunAway(DefaultRunAwayConfig()))
	r.start(t)
	for i := 0; i < 1000 && r.cmd.AcceptingInput(); i++ {
		r.tick(16 * time.Millisecond)
	}
	r.expectOutcome(t, command.Failure)
	resp, ok := r.rec.Responses()[0].(RunAwayResponse)
	if !ok || resp.Bar != 0 {
		t.Errorf("Expected empty bar response, got %v", r.rec.Responses())
	}
}
