package commands

import (
	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/vmath"
)

// MashButtonRangeConfig tunes MashButtonRange
type MashButtonRangeConfig struct {
	MashButtonConfig
	// DecelerationPerSecond drains the bar every tick
	DecelerationPerSecond float64 `toml:"deceleration_per_second"`
	// RangeWidth is the band around the cursor the bar must end in
	RangeWidth float64 `toml:"range_width"`
	// CursorSpeed is bar units per second travelled by the cursor
	CursorSpeed float64 `toml:"cursor_speed"`
}

func DefaultMashButtonRangeConfig() MashButtonRangeConfig {
	return MashButtonRangeConfig{
		MashButtonConfig:      DefaultMashButtonConfig(),
		DecelerationPerSecond: 20,
		RangeWidth:            20,
		CursorSpeed:           60,
	}
}

func (cfg MashButtonRangeConfig) Validate() error {
	if err := cfg.MashButtonConfig.Validate(); err != nil {
		return err
	}
	if cfg.DecelerationPerSecond < 0 || cfg.CursorSpeed < 0 {
		return command.Misconfigured("deceleration and cursor speed cannot be negative")
	}
	if cfg.RangeWidth <= 0 {
		return command.Misconfigured("range_width must be positive")
	}
	return nil
}

// MashButtonRange mashes against a draining bar that must end inside a band
// around a cursor sweeping the bar
type MashButtonRange struct {
	cfg      MashButtonRangeConfig
	bar      command.Bar
	timer    command.Timer
	traveled float64
}

func NewMashButtonRange(cfg MashButtonRangeConfig) *MashButtonRange {
	return &MashButtonRange{cfg: cfg}
}

func (g *MashButtonRange) Name() string { return "MashButtonRange" }

func (g *MashButtonRange) Start(c *command.Command, args []any) error {
	g.bar = command.NewBar(g.cfg.MaxBarValue)
	g.timer = command.NewTimer(g.cfg.TimeToFill)
	g.traveled = 0
	return nil
}

// Cursor returns the current cursor value on the bar
func (g *MashButtonRange) Cursor() float64 {
	return vmath.PingPong(g.traveled, 0, g.cfg.MaxBarValue)
}

// Target returns the band the bar must be in when time runs out
func (g *MashButtonRange) Target() command.Window {
	return command.CenteredWindow(g.Cursor(), g.cfg.RangeWidth)
}

func (g *MashButtonRange) Tick(c *command.Command) {
	dt := c.Elapsed()
	g.traveled += g.cfg.CursorSpeed * dt.Seconds()
	g.bar.Fill(-g.cfg.DecelerationPerSecond*dt.Seconds(), true)

	switch {
	case c.AutoComplete():
		g.bar.Set(g.Cursor(), true)
	case c.Pressed(g.cfg.Button):
		g.bar.Fill(g.cfg.AmountPerPress, true)
		c.SendResponse(g.bar.Fraction())
	}

	if !g.timer.Advance(dt) {
		return
	}
	if g.Target().Contains(g.bar.Value()) {
		c.SendRank(command.RankNice)
		c.Complete(command.Success)
		return
	}
	c.Complete(command.Failure)
}

func (g *MashButtonRange) End() {
	g.bar.Reset()
	g.timer.Reset()
	g.traveled = 0
}

func (g *MashButtonRange) Progress() float64 { return g.bar.Fraction() }
