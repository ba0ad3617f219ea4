package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
)

// MashButtonConfig tunes MashButton
type MashButtonConfig struct {
	MaxBarValue    float64       `toml:"max_bar_value"`
	AmountPerPress float64       `toml:"amount_per_press"`
	TimeToFill     time.Duration `toml:"time_to_fill"`
	Button         input.Button  `toml:"button"`
}

// DefaultMashButtonConfig returns the stock tuning
func DefaultMashButtonConfig() MashButtonConfig {
	return MashButtonConfig{
		MaxBarValue:    100,
		AmountPerPress: 10,
		TimeToFill:     3 * time.Second,
		Button:         input.ButtonA,
	}
}

func (cfg MashButtonConfig) Validate() error {
	if cfg.MaxBarValue <= 0 {
		return command.Misconfigured("max_bar_value must be positive")
	}
	if cfg.AmountPerPress <= 0 {
		return command.Misconfigured("amount_per_press must be positive")
	}
	if cfg.TimeToFill <= 0 {
		return command.Misconfigured("time_to_fill must be positive")
	}
	if !cfg.Button.Valid() {
		return command.Misconfigured("button is not set")
	}
	return nil
}

// MashButton fills a bar one press at a time before a deadline
type MashButton struct {
	cfg   MashButtonConfig
	bar   command.Bar
	timer command.Timer
}

// NewMashButton creates the game
func NewMashButton(cfg MashButtonConfig) *MashButton {
	return &MashButton{cfg: cfg}
}

func (g *MashButton) Name() string { return "MashButton" }

func (g *MashButton) Start(c *command.Command, args []any) error {
	g.bar = command.NewBar(g.cfg.MaxBarValue)
	g.timer = command.NewTimer(g.cfg.TimeToFill)
	return nil
}

func (g *MashButton) Tick(c *command.Command) {
	if g.timer.Advance(c.Elapsed()) {
		c.Complete(command.Failure)
		return
	}

	if c.AutoComplete() || c.Pressed(g.cfg.Button) {
		g.bar.Fill(g.cfg.AmountPerPress, true)
		if g.bar.Full() {
			c.SendRank(command.RankGood)
			c.Complete(command.Success)
		}
	}
}

func (g *MashButton) End() {
	g.bar.Reset()
	g.timer.Reset()
}

// Progress returns the bar fill in [0, 1]
func (g *MashButton) Progress() float64 { return g.bar.Fraction() }
