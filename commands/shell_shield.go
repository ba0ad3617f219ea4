package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
	"github.com/lixenwraith/action-command/vmath"
)

// ShieldRange maps a cursor band to a shield strength and grade
type ShieldRange struct {
	Range command.Window `toml:"range"`
	Value int            `toml:"value"`
	Rank  command.Rank   `toml:"rank"`
}

// ShellShieldConfig tunes ShellShield
type ShellShieldConfig struct {
	MaxValue float64 `toml:"max_value"`
	// CursorPeriod divides elapsed milliseconds before the cosine
	CursorPeriod time.Duration `toml:"cursor_period"`
	Duration     time.Duration `toml:"duration"`
	Ranges       []ShieldRange `toml:"ranges"`
	Button       input.Button  `toml:"button"`
}

func DefaultShellShieldConfig() ShellShieldConfig {
	return ShellShieldConfig{
		MaxValue:     100,
		CursorPeriod: 150 * time.Millisecond,
		Duration:     4 * time.Second,
		Ranges: []ShieldRange{
			{Range: command.Window{Start: 0, End: 40}, Value: 1, Rank: command.RankNice},
			{Range: command.Window{Start: 40, End: 70}, Value: 2, Rank: command.RankGood},
			{Range: command.Window{Start: 70, End: 90}, Value: 3, Rank: command.RankGreat},
			{Range: command.Window{Start: 90, End: 101}, Value: 4, Rank: command.RankExcellent},
		},
		Button: input.ButtonA,
	}
}

// Validate checks scalars only; an empty range table is reported at run time
func (cfg ShellShieldConfig) Validate() error {
	if cfg.MaxValue <= 0 || cfg.CursorPeriod <= 0 || cfg.Duration <= 0 {
		return command.Misconfigured("max_value, cursor_period and duration must be positive")
	}
	if !cfg.Button.Valid() {
		return command.Misconfigured("button is not set")
	}
	return nil
}

// ShellShield swings a cosine cursor; a press reports the range it lands in
// A press outside every range is ignored; only the deadline fails
type ShellShield struct {
	cfg     ShellShieldConfig
	timer   command.Timer
	elapsed time.Duration
}

func NewShellShield(cfg ShellShieldConfig) *ShellShield {
	return &ShellShield{cfg: cfg}
}

func (g *ShellShield) Name() string { return "ShellShield" }

func (g *ShellShield) Start(c *command.Command, args []any) error {
	g.timer = command.NewTimer(g.cfg.Duration)
	g.elapsed = 0
	return nil
}

// Cursor returns the cursor value in [0, MaxValue]
func (g *ShellShield) Cursor() float64 {
	return vmath.Oscillate(command.Ms(g.elapsed), command.Ms(g.cfg.CursorPeriod), g.cfg.MaxValue)
}

func (g *ShellShield) Tick(c *command.Command) {
	if len(g.cfg.Ranges) == 0 {
		c.Logger().Error("shell shield has no cursor ranges")
		c.Complete(command.Failure)
		return
	}

	dt := c.Elapsed()
	g.elapsed += dt
	if g.timer.Advance(dt) {
		c.Complete(command.Failure)
		return
	}

	cursor := g.Cursor()
	if c.AutoComplete() {
		last := g.cfg.Ranges[len(g.cfg.Ranges)-1]
		if last.Range.Contains(cursor) {
			g.finish(c, last)
		}
		return
	}

	if !c.Pressed(g.cfg.Button) {
		return
	}
	for _, r := range g.cfg.Ranges {
		if r.Range.Contains(cursor) {
			g.finish(c, r)
			return
		}
	}
}

func (g *ShellShield) finish(c *command.Command, r ShieldRange) {
	c.SendResponse(r.Value)
	if r.Rank != command.RankNone {
		c.SendRank(r.Rank)
	}
	c.Complete(command.Success)
}

func (g *ShellShield) End() {
	g.timer.Reset()
	g.elapsed = 0
}

func (g *ShellShield) Progress() float64 { return g.Cursor() / g.cfg.MaxValue }
