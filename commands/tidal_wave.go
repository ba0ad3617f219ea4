package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
)

// TidalWaveConfig tunes TidalWave
type TidalWaveConfig struct {
	InputDuration time.Duration  `toml:"input_duration"`
	MaxButtons    int            `toml:"max_buttons"`
	Buttons       []input.Button `toml:"buttons"`
}

func DefaultTidalWaveConfig() TidalWaveConfig {
	return TidalWaveConfig{
		InputDuration: 4 * time.Second,
		MaxButtons:    12,
		Buttons:       sequenceAlphabet(),
	}
}

func (cfg TidalWaveConfig) Validate() error {
	if cfg.InputDuration <= 0 || cfg.MaxButtons <= 0 {
		return command.Misconfigured("input_duration and max_buttons must be positive")
	}
	return validateAlphabet(cfg.Buttons)
}

// TidalWave shows one random button at a time until time runs out or the
// count is reached; each correct press adds a wave
// StartInput accepts an optional int overriding the count
type TidalWave struct {
	cfg     TidalWaveConfig
	seq     command.Sequence
	timer   command.Timer
	target  int
	presses int
}

func NewTidalWave(cfg TidalWaveConfig) *TidalWave {
	return &TidalWave{cfg: cfg}
}

func (g *TidalWave) Name() string { return "TidalWave" }

func (g *TidalWave) Start(c *command.Command, args []any) error {
	if len(g.cfg.Buttons) == 0 {
		return command.Misconfigured("empty button alphabet")
	}
	g.target = g.cfg.MaxButtons
	if len(args) > 0 {
		n, ok := args[0].(int)
		if !ok || n <= 0 {
			return &command.ConfigurationError{Reason: "button count must be a positive int", Err: command.ErrInvalidArgument}
		}
		g.target = n
	}
	g.presses = 0
	g.timer = command.NewTimer(g.cfg.InputDuration)
	g.seq.Clear()
	g.seq.AppendRandom(c.Rand(), g.cfg.Buttons)
	return nil
}

// Expected returns the button currently shown
func (g *TidalWave) Expected() input.Button {
	b, _ := g.seq.Expected()
	return b
}

// Presses returns how many correct presses were made
func (g *TidalWave) Presses() int { return g.presses }

func (g *TidalWave) Tick(c *command.Command) {
	if g.timer.Advance(c.Elapsed()) {
		if g.presses > 0 {
			c.Complete(command.Success)
			return
		}
		c.Complete(command.Failure)
		return
	}

	if !stepSequence(c, &g.seq, g.cfg.Buttons) {
		return
	}
	g.presses++
	if g.presses >= g.target {
		c.Complete(command.Success)
		return
	}
	g.seq.AppendRandom(c.Rand(), g.cfg.Buttons)
}

func (g *TidalWave) End() {
	g.seq.Clear()
	g.timer.Reset()
	g.presses = 0
}

func (g *TidalWave) Progress() float64 {
	if g.target == 0 {
		return 0
	}
	return float64(g.presses) / float64(g.target)
}
