package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
)

// HammerConfig tunes Hammer
type HammerConfig struct {
	MaxLights         int           `toml:"max_lights"`
	TimeBetweenLights time.Duration `toml:"time_between_lights"`
	// StartTimeout bounds the wait for the first hold
	StartTimeout time.Duration `toml:"start_timeout"`
	// HoldTimeout is how long the button may stay held after the last light
	HoldTimeout time.Duration `toml:"hold_timeout"`
	Button      input.Button  `toml:"button"`
}

func DefaultHammerConfig() HammerConfig {
	return HammerConfig{
		MaxLights:         4,
		TimeBetweenLights: 300 * time.Millisecond,
		StartTimeout:      2 * time.Second,
		HoldTimeout:       500 * time.Millisecond,
		Button:            input.ButtonLeft,
	}
}

func (cfg HammerConfig) Validate() error {
	if cfg.MaxLights <= 0 {
		return command.Misconfigured("max_lights must be positive")
	}
	if cfg.TimeBetweenLights <= 0 || cfg.StartTimeout <= 0 || cfg.HoldTimeout <= 0 {
		return command.Misconfigured("timings must be positive")
	}
	if !cfg.Button.Valid() {
		return command.Misconfigured("button is not set")
	}
	return nil
}

// Hammer lights one light per interval while held; releasing after the last
// light succeeds, releasing early or holding too long fails
type Hammer struct {
	cfg     HammerConfig
	lights  command.Lights
	started bool
	wait    command.Timer
}

func NewHammer(cfg HammerConfig) *Hammer {
	return &Hammer{cfg: cfg}
}

func (g *Hammer) Name() string { return "Hammer" }

func (g *Hammer) Start(c *command.Command, args []any) error {
	g.lights = command.NewLights(g.cfg.MaxLights, g.cfg.TimeBetweenLights)
	g.started = false
	g.wait = command.NewTimer(g.cfg.StartTimeout)
	return nil
}

// Lights returns how many lights are lit
func (g *Hammer) Lights() int { return g.lights.Filled() }

func (g *Hammer) Tick(c *command.Command) {
	now := c.Now()
	held := c.AutoComplete() || c.Held(g.cfg.Button)

	if !g.started {
		if held {
			g.started = true
			g.lights.Reset(now)
			return
		}
		if g.wait.Advance(c.Elapsed()) {
			c.Complete(command.Failure)
		}
		return
	}

	if !held {
		if g.lights.AllFilled() {
			c.SendRank(command.RankNice)
			c.Complete(command.Success)
			return
		}
		c.Complete(command.Failure)
		return
	}

	if !g.lights.AllFilled() {
		if g.lights.Ready(now) && g.lights.FillNext(now) {
			c.SendResponse(g.lights.Filled())
		}
		return
	}

	if c.AutoComplete() {
		c.SendRank(command.RankNice)
		c.Complete(command.Success)
		return
	}
	if now-g.lights.LastFilledAt() >= g.cfg.HoldTimeout {
		c.Complete(command.Failure)
	}
}

func (g *Hammer) End() {
	g.lights.Reset(0)
	g.started = false
	g.wait.Reset()
}

func (g *Hammer) Progress() float64 {
	if g.cfg.MaxLights == 0 {
		return 0
	}
	return float64(g.lights.Filled()) / float64(g.cfg.MaxLights)
}
