package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
	"github.com/lixenwraith/action-command/vmath"
)

// TattleConfig tunes Tattle
type TattleConfig struct {
	StartPosition vmath.Vec2    `toml:"start_position"`
	TravelTime    time.Duration `toml:"travel_time"`
	SuccessRadius float64       `toml:"success_radius"`
	Button        input.Button  `toml:"button"`
}

func DefaultTattleConfig() TattleConfig {
	return TattleConfig{
		StartPosition: vmath.V(0, 0),
		TravelTime:    time.Second,
		SuccessRadius: 8,
		Button:        input.ButtonA,
	}
}

func (cfg TattleConfig) Validate() error {
	if cfg.TravelTime <= 0 || cfg.SuccessRadius <= 0 {
		return command.Misconfigured("travel_time and success_radius must be positive")
	}
	if !cfg.Button.Valid() {
		return command.Misconfigured("button is not set")
	}
	return nil
}

// Tattle sweeps a cursor through the target; pressing while it is within the
// success radius succeeds
// StartInput requires the target as a vmath.Vec2
type Tattle struct {
	cfg     TattleConfig
	target  vmath.Vec2
	elapsed time.Duration
}

func NewTattle(cfg TattleConfig) *Tattle {
	return &Tattle{cfg: cfg}
}

func (g *Tattle) Name() string { return "Tattle" }

func (g *Tattle) Start(c *command.Command, args []any) error {
	if len(args) == 0 {
		return &command.ConfigurationError{Reason: "target position required", Err: command.ErrMissingArgument}
	}
	switch v := args[0].(type) {
	case vmath.Vec2:
		g.target = v
	case *vmath.Vec2:
		if v == nil {
			return &command.ConfigurationError{Reason: "target position is nil", Err: command.ErrInvalidArgument}
		}
		g.target = *v
	default:
		return &command.ConfigurationError{Reason: "target position must be a vmath.Vec2", Err: command.ErrInvalidArgument}
	}
	g.elapsed = 0
	return nil
}

// Cursor returns the cursor position; it keeps moving past the target
func (g *Tattle) Cursor() vmath.Vec2 {
	t := float64(g.elapsed) / float64(g.cfg.TravelTime)
	return vmath.LerpVec(g.cfg.StartPosition, g.target, t)
}

func (g *Tattle) Tick(c *command.Command) {
	g.elapsed += c.Elapsed()
	inside := g.Cursor().Dist(g.target) <= g.cfg.SuccessRadius

	if c.AutoComplete() {
		if inside {
			c.SendRank(command.RankNice)
			c.Complete(command.Success)
			return
		}
	} else if c.Pressed(g.cfg.Button) {
		if inside {
			c.SendRank(command.RankNice)
			c.Complete(command.Success)
			return
		}
		c.Complete(command.Failure)
		return
	}

	if g.elapsed >= g.cfg.TravelTime && !inside {
		c.Complete(command.Failure)
	}
}

func (g *Tattle) End() {
	g.target = vmath.Vec2{}
	g.elapsed = 0
}

func (g *Tattle) Progress() float64 {
	return vmath.Clamp(float64(g.elapsed)/float64(g.cfg.TravelTime), 0, 1)
}
