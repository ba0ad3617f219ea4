package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
)

// TornadoJumpPhase is the active half of a TornadoJump
type TornadoJumpPhase uint8

const (
	PhaseJump TornadoJumpPhase = iota
	PhaseTornado
)

func (p TornadoJumpPhase) String() string {
	if p == PhaseTornado {
		return "Tornado"
	}
	return "Jump"
}

// TornadoJumpResponse reports phase progress
type TornadoJumpResponse struct {
	Phase TornadoJumpPhase
	Index int // buttons entered in the tornado phase
}

// TornadoJumpConfig tunes TornadoJump
type TornadoJumpConfig struct {
	Jump            JumpConfig     `toml:"jump"`
	MinButtons      int            `toml:"min_buttons"`
	MaxButtons      int            `toml:"max_buttons"`
	TornadoDuration time.Duration  `toml:"tornado_duration"`
	Buttons         []input.Button `toml:"buttons"`
}

func DefaultTornadoJumpConfig() TornadoJumpConfig {
	return TornadoJumpConfig{
		Jump:            DefaultJumpConfig(),
		MinButtons:      3,
		MaxButtons:      3,
		TornadoDuration: 1500 * time.Millisecond,
		Buttons:         sequenceAlphabet(),
	}
}

func (cfg TornadoJumpConfig) Validate() error {
	if err := cfg.Jump.Validate(); err != nil {
		return err
	}
	if cfg.MinButtons <= 0 || cfg.MaxButtons < cfg.MinButtons {
		return command.Misconfigured("need 0 < min_buttons <= max_buttons")
	}
	if cfg.TornadoDuration <= 0 {
		return command.Misconfigured("tornado_duration must be positive")
	}
	return validateAlphabet(cfg.Buttons)
}

// TornadoJump is a timed jump followed, on success only, by a button sequence
type TornadoJump struct {
	cfg   TornadoJumpConfig
	phase TornadoJumpPhase
	tw    timingWindow
	seq   command.Sequence
	timer command.Timer
}

func NewTornadoJump(cfg TornadoJumpConfig) *TornadoJump {
	return &TornadoJump{cfg: cfg, tw: newTimingWindow(cfg.Jump)}
}

func (g *TornadoJump) Name() string { return "TornadoJump" }

func (g *TornadoJump) Start(c *command.Command, args []any) error {
	if len(g.cfg.Buttons) == 0 {
		return command.Misconfigured("empty button alphabet")
	}
	g.phase = PhaseJump
	g.tw.reset()
	g.seq.Clear()
	return nil
}

// Phase returns the active phase
func (g *TornadoJump) Phase() TornadoJumpPhase { return g.phase }

// Sequence returns the tornado buttons, empty during the jump
func (g *TornadoJump) Sequence() []input.Button { return g.seq.Buttons() }

func (g *TornadoJump) Tick(c *command.Command) {
	if g.phase == PhaseJump {
		g.tickJump(c)
		return
	}
	g.tickTornado(c)
}

func (g *TornadoJump) tickJump(c *command.Command) {
	result, done := g.tw.step(c)
	if !done {
		return
	}
	if result == command.Failure {
		c.Complete(command.Failure)
		return
	}

	c.SendResponse(TornadoJumpResponse{Phase: PhaseJump})
	n := c.Rand().IntRange(g.cfg.MinButtons, g.cfg.MaxButtons)
	g.seq = command.GenerateSequence(c.Rand(), g.cfg.Buttons, n)
	g.timer = command.NewTimer(g.cfg.TornadoDuration)
	g.phase = PhaseTornado
}

func (g *TornadoJump) tickTornado(c *command.Command) {
	if g.timer.Advance(c.Elapsed()) {
		c.Complete(command.Failure)
		return
	}

	if c.AutoComplete() {
		g.seq.Skip()
	} else {
		switch g.seq.Advance(c.Input(), g.cfg.Buttons) {
		case command.MatchWrong:
			c.Complete(command.Failure)
			return
		case command.MatchNone:
			return
		}
	}

	c.SendResponse(TornadoJumpResponse{Phase: PhaseTornado, Index: g.seq.Index()})
	if g.seq.Done() {
		c.SendRank(command.RankNice)
		c.Complete(command.Success)
	}
}

func (g *TornadoJump) End() {
	g.phase = PhaseJump
	g.tw.reset()
	g.seq.Clear()
	g.timer.Reset()
}
