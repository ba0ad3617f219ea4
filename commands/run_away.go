package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
	"github.com/lixenwraith/action-command/vmath"
)

// RunAwayConfig tunes RunAway
type RunAwayConfig struct {
	MaxBarValue           float64       `toml:"max_bar_value"`
	AmountPerPress        float64       `toml:"amount_per_press"`
	DecelerationPerSecond float64       `toml:"deceleration_per_second"`
	CursorSpeed           float64       `toml:"cursor_speed"`
	Duration              time.Duration `toml:"duration"`
	Button                input.Button  `toml:"button"`
}

func DefaultRunAwayConfig() RunAwayConfig {
	return RunAwayConfig{
		MaxBarValue:           100,
		AmountPerPress:        5,
		DecelerationPerSecond: 15,
		CursorSpeed:           80,
		Duration:              3 * time.Second,
		Button:                input.ButtonA,
	}
}

func (cfg RunAwayConfig) Validate() error {
	if cfg.MaxBarValue <= 0 || cfg.AmountPerPress <= 0 {
		return command.Misconfigured("max_bar_value and amount_per_press must be positive")
	}
	if cfg.DecelerationPerSecond < 0 {
		return command.Misconfigured("deceleration cannot be negative")
	}
	if cfg.CursorSpeed <= 0 {
		return command.Misconfigured("cursor_speed must be positive")
	}
	if cfg.Duration <= 0 {
		return command.Misconfigured("duration must be positive")
	}
	if !cfg.Button.Valid() {
		return command.Misconfigured("button is not set")
	}
	return nil
}

// RunAwayResponse is sent once when time runs out
type RunAwayResponse struct {
	Bar    float64 // bar fill in [0, 1]
	Cursor float64 // cursor position in [0, 1]
}

// RunAway escapes when the mashed bar is at or past a sweeping cursor at the deadline
type RunAway struct {
	cfg      RunAwayConfig
	bar      command.Bar
	timer    command.Timer
	traveled float64
}

func NewRunAway(cfg RunAwayConfig) *RunAway {
	return &RunAway{cfg: cfg}
}

func (g *RunAway) Name() string { return "RunAway" }

func (g *RunAway) Start(c *command.Command, args []any) error {
	g.bar = command.NewBar(g.cfg.MaxBarValue)
	g.timer = command.NewTimer(g.cfg.Duration)
	g.traveled = 0
	return nil
}

// Cursor returns the cursor value on the bar
func (g *RunAway) Cursor() float64 {
	return vmath.PingPong(g.traveled, 0, g.cfg.MaxBarValue)
}

func (g *RunAway) Tick(c *command.Command) {
	dt := c.Elapsed()
	g.traveled += g.cfg.CursorSpeed * dt.Seconds()
	g.bar.Fill(-g.cfg.DecelerationPerSecond*dt.Seconds(), true)

	if c.AutoComplete() {
		g.bar.Set(g.cfg.MaxBarValue, true)
	} else if c.Pressed(g.cfg.Button) {
		g.bar.Fill(g.cfg.AmountPerPress, true)
	}

	if !g.timer.Advance(dt) {
		return
	}

	cursor := g.Cursor()
	c.SendResponse(RunAwayResponse{
		Bar:    g.bar.Fraction(),
		Cursor: cursor / g.cfg.MaxBarValue,
	})
	if g.bar.Value() >= cursor {
		c.Complete(command.Success)
		return
	}
	c.Complete(command.Failure)
}

func (g *RunAway) End() {
	g.bar.Reset()
	g.timer.Reset()
	g.traveled = 0
}

func (g *RunAway) Progress() float64 { return g.bar.Fraction() }
