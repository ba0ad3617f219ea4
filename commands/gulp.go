package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
)

// GulpConfig tunes Gulp
// The bar is measured in milliseconds of hold time scaled by SpeedScale
type GulpConfig struct {
	TotalDuration time.Duration `toml:"total_duration"`
	SuccessRange  time.Duration `toml:"success_range"`
	SpeedScale    float64       `toml:"speed_scale"`
	Button        input.Button  `toml:"button"`
}

func DefaultGulpConfig() GulpConfig {
	return GulpConfig{
		TotalDuration: time.Second,
		SuccessRange:  200 * time.Millisecond,
		SpeedScale:    1,
		Button:        input.ButtonLeft,
	}
}

func (cfg GulpConfig) Validate() error {
	if cfg.TotalDuration <= 0 {
		return command.Misconfigured("total_duration must be positive")
	}
	if cfg.SuccessRange <= 0 || cfg.SuccessRange > cfg.TotalDuration {
		return command.Misconfigured("success_range must be in (0, total_duration]")
	}
	if cfg.SpeedScale <= 0 {
		return command.Misconfigured("speed_scale must be positive")
	}
	if !cfg.Button.Valid() {
		return command.Misconfigured("button is not set")
	}
	return nil
}

// Gulp fills while the button is held and succeeds on a release inside the
// trailing window [max - range, max)
type Gulp struct {
	cfg     GulpConfig
	bar     command.Bar
	window  command.Window
	holding bool

	// idle bounds the wait for the first hold
	idle command.Timer
}

func NewGulp(cfg GulpConfig) *Gulp {
	return &Gulp{cfg: cfg}
}

func (g *Gulp) Name() string { return "Gulp" }

func (g *Gulp) Start(c *command.Command, args []any) error {
	max := command.Ms(g.cfg.TotalDuration)
	g.bar = command.NewBar(max)
	g.window = command.Window{Start: max - command.Ms(g.cfg.SuccessRange), End: max}
	g.holding = false
	g.idle = command.NewTimer(g.cfg.TotalDuration)
	return nil
}

// Window returns the release window in bar units
func (g *Gulp) Window() command.Window { return g.window }

func (g *Gulp) Tick(c *command.Command) {
	dt := c.Elapsed()
	held := c.Held(g.cfg.Button)

	if c.AutoComplete() {
		// Hold until the middle of the window, then let go
		held = g.bar.Value() < g.window.Start+g.window.Width()/2
		if !g.holding {
			held = true
		}
	}

	if held {
		g.holding = true
		g.bar.Fill(command.Ms(dt)*g.cfg.SpeedScale, false)
		if g.bar.Full() {
			c.Complete(command.Failure)
		}
		return
	}

	if !g.holding {
		if g.idle.Advance(dt) {
			c.Complete(command.Failure)
		}
		return
	}

	value := g.bar.Value()
	c.SendResponse(value)
	if g.window.Contains(value) {
		c.SendRank(command.RankNice)
		c.Complete(command.Success)
		return
	}
	c.Complete(command.Failure)
}

func (g *Gulp) End() {
	g.bar.Reset()
	g.holding = false
	g.idle.Reset()
}

func (g *Gulp) Progress() float64 { return g.bar.Fraction() }
