package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
)

// MultiButtonConfig tunes MultiButton
type MultiButtonConfig struct {
	MinButtons    int            `toml:"min_buttons"`
	MaxButtons    int            `toml:"max_buttons"`
	InputDuration time.Duration  `toml:"input_duration"`
	Buttons       []input.Button `toml:"buttons"`
}

func DefaultMultiButtonConfig() MultiButtonConfig {
	return MultiButtonConfig{
		MinButtons:    3,
		MaxButtons:    5,
		InputDuration: 5 * time.Second,
		Buttons:       sequenceAlphabet(),
	}
}

func (cfg MultiButtonConfig) Validate() error {
	if cfg.MinButtons <= 0 || cfg.MaxButtons < cfg.MinButtons {
		return command.Misconfigured("need 0 < min_buttons <= max_buttons")
	}
	if cfg.InputDuration <= 0 {
		return command.Misconfigured("input_duration must be positive")
	}
	return validateAlphabet(cfg.Buttons)
}

// sequenceAlphabet copies the default alphabet so decoded configs never share it
func sequenceAlphabet() []input.Button {
	return append([]input.Button(nil), input.SequenceButtons...)
}

func validateAlphabet(buttons []input.Button) error {
	if len(buttons) == 0 {
		return command.Misconfigured("buttons must not be empty")
	}
	for _, b := range buttons {
		if !b.Valid() {
			return command.Misconfigured("invalid button %v in alphabet", b)
		}
	}
	return nil
}

// MultiButton asks for a random button sequence in order before a deadline
// A wrong alphabet button fails on the tick it is pressed
type MultiButton struct {
	cfg   MultiButtonConfig
	seq   command.Sequence
	timer command.Timer
}

func NewMultiButton(cfg MultiButtonConfig) *MultiButton {
	return &MultiButton{cfg: cfg}
}

func (g *MultiButton) Name() string { return "MultiButton" }

func (g *MultiButton) Start(c *command.Command, args []any) error {
	if len(g.cfg.Buttons) == 0 {
		return command.Misconfigured("empty button alphabet")
	}
	n := c.Rand().IntRange(g.cfg.MinButtons, g.cfg.MaxButtons)
	g.seq = command.GenerateSequence(c.Rand(), g.cfg.Buttons, n)
	g.timer = command.NewTimer(g.cfg.InputDuration)
	return nil
}

// Sequence returns the generated buttons
func (g *MultiButton) Sequence() []input.Button { return g.seq.Buttons() }

// Index returns how many buttons were entered
func (g *MultiButton) Index() int { return g.seq.Index() }

func (g *MultiButton) Tick(c *command.Command) {
	if g.timer.Advance(c.Elapsed()) {
		c.Complete(command.Failure)
		return
	}
	if !stepSequence(c, &g.seq, g.cfg.Buttons) {
		return
	}
	if g.seq.Done() {
		c.SendRank(command.RankNice)
		c.Complete(command.Success)
	}
}

// stepSequence consumes one press; returns false when the run ended or nothing moved
func stepSequence(c *command.Command, seq *command.Sequence, alphabet []input.Button) bool {
	if c.AutoComplete() {
		seq.Skip()
		c.SendResponse(seq.Index())
		return true
	}
	switch seq.Advance(c.Input(), alphabet) {
	case command.MatchWrong:
		c.Complete(command.Failure)
		return false
	case command.MatchCorrect:
		c.SendResponse(seq.Index())
		return true
	default:
		return false
	}
}

func (g *MultiButton) End() {
	g.seq.Clear()
	g.timer.Reset()
}

func (g *MultiButton) Progress() float64 {
	if g.seq.Len() == 0 {
		return 0
	}
	return float64(g.seq.Index()) / float64(g.seq.Len())
}
