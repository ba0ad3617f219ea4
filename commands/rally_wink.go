package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
)

// RallyWinkConfig tunes RallyWink
type RallyWinkConfig struct {
	MaxBarValue           float64       `toml:"max_bar_value"`
	AmountPerPress        float64       `toml:"amount_per_press"`
	DecelerationPerSecond float64       `toml:"deceleration_per_second"`
	Duration              time.Duration `toml:"duration"`
	First                 input.Button  `toml:"first"`
	Second                input.Button  `toml:"second"`
}

func DefaultRallyWinkConfig() RallyWinkConfig {
	return RallyWinkConfig{
		MaxBarValue:           100,
		AmountPerPress:        8,
		DecelerationPerSecond: 20,
		Duration:              4 * time.Second,
		First:                 input.ButtonA,
		Second:                input.ButtonB,
	}
}

func (cfg RallyWinkConfig) Validate() error {
	if cfg.MaxBarValue <= 0 || cfg.AmountPerPress <= 0 {
		return command.Misconfigured("max_bar_value and amount_per_press must be positive")
	}
	if cfg.DecelerationPerSecond < 0 {
		return command.Misconfigured("deceleration_per_second cannot be negative")
	}
	if cfg.Duration <= 0 {
		return command.Misconfigured("duration must be positive")
	}
	if !cfg.First.Valid() || !cfg.Second.Valid() || cfg.First == cfg.Second {
		return command.Misconfigured("first and second must be two different buttons")
	}
	return nil
}

// RallyWink fills a draining bar by alternating two buttons
// Repeating the same button adds nothing
type RallyWink struct {
	cfg      RallyWinkConfig
	bar      command.Bar
	timer    command.Timer
	expected input.Button
}

func NewRallyWink(cfg RallyWinkConfig) *RallyWink {
	return &RallyWink{cfg: cfg}
}

func (g *RallyWink) Name() string { return "RallyWink" }

func (g *RallyWink) Start(c *command.Command, args []any) error {
	g.bar = command.NewBar(g.cfg.MaxBarValue)
	g.timer = command.NewTimer(g.cfg.Duration)
	g.expected = g.cfg.First
	return nil
}

// Expected returns the button that fills the bar next
func (g *RallyWink) Expected() input.Button { return g.expected }

func (g *RallyWink) Tick(c *command.Command) {
	dt := c.Elapsed()
	if g.timer.Advance(dt) {
		c.Complete(command.Failure)
		return
	}

	g.bar.Fill(-g.cfg.DecelerationPerSecond*dt.Seconds(), true)

	if c.AutoComplete() || c.Pressed(g.expected) {
		g.bar.Fill(g.cfg.AmountPerPress, true)
		if g.expected == g.cfg.First {
			g.expected = g.cfg.Second
		} else {
			g.expected = g.cfg.First
		}
	}

	if g.bar.Full() {
		c.SendRank(command.RankNice)
		c.Complete(command.Success)
	}
}

func (g *RallyWink) End() {
	g.bar.Reset()
	g.timer.Reset()
	g.expected = input.ButtonNone
}

func (g *RallyWink) Progress() float64 { return g.bar.Fraction() }
