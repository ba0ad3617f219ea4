package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
)

// AirLiftConfig tunes AirLift
type AirLiftConfig struct {
	MaxBarValue           float64       `toml:"max_bar_value"`
	AmountPerPress        float64       `toml:"amount_per_press"`
	DecelerationPerSecond float64       `toml:"deceleration_per_second"`
	Duration              time.Duration `toml:"duration"`
	Button                input.Button  `toml:"button"`
}

func DefaultAirLiftConfig() AirLiftConfig {
	return AirLiftConfig{
		MaxBarValue:           100,
		AmountPerPress:        6,
		DecelerationPerSecond: 25,
		Duration:              4 * time.Second,
		Button:                input.ButtonA,
	}
}

func (cfg AirLiftConfig) Validate() error {
	if cfg.MaxBarValue <= 0 || cfg.AmountPerPress <= 0 {
		return command.Misconfigured("max_bar_value and amount_per_press must be positive")
	}
	if cfg.DecelerationPerSecond < 0 {
		return command.Misconfigured("deceleration_per_second cannot be negative")
	}
	if cfg.Duration <= 0 {
		return command.Misconfigured("duration must be positive")
	}
	if !cfg.Button.Valid() {
		return command.Misconfigured("button is not set")
	}
	return nil
}

// AirLift keeps a draining bar up by mashing; the fill at the deadline is the
// lift chance
type AirLift struct {
	cfg   AirLiftConfig
	bar   command.Bar
	timer command.Timer
}

func NewAirLift(cfg AirLiftConfig) *AirLift {
	return &AirLift{cfg: cfg}
}

func (g *AirLift) Name() string { return "AirLift" }

func (g *AirLift) Start(c *command.Command, args []any) error {
	g.bar = command.NewBar(g.cfg.MaxBarValue)
	g.timer = command.NewTimer(g.cfg.Duration)
	return nil
}

func (g *AirLift) Tick(c *command.Command) {
	dt := c.Elapsed()
	g.bar.Fill(-g.cfg.DecelerationPerSecond*dt.Seconds(), true)

	if c.AutoComplete() {
		g.bar.Set(g.cfg.MaxBarValue, true)
	} else if c.Pressed(g.cfg.Button) {
		g.bar.Fill(g.cfg.AmountPerPress, true)
	}

	if !g.timer.Advance(dt) {
		return
	}

	fill := g.bar.Fraction()
	c.SendResponse(fill)
	if fill <= 0 {
		c.Complete(command.Failure)
		return
	}
	if rank := airLiftRank(fill); rank != command.RankNone {
		c.SendRank(rank)
	}
	c.Complete(command.Success)
}

func airLiftRank(fill float64) command.Rank {
	switch {
	case fill >= 1:
		return command.RankGreat
	case fill >= 2.0/3.0:
		return command.RankGood
	case fill >= 1.0/3.0:
		return command.RankNice
	default:
		return command.RankNone
	}
}

func (g *AirLift) End() {
	g.bar.Reset()
	g.timer.Reset()
}

func (g *AirLift) Progress() float64 { return g.bar.Fraction() }
