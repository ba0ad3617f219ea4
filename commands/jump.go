package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
)

// JumpConfig tunes Jump; the window is measured from StartInput
type JumpConfig struct {
	WindowStart time.Duration `toml:"window_start"`
	WindowEnd   time.Duration `toml:"window_end"`
	Button      input.Button  `toml:"button"`
}

func DefaultJumpConfig() JumpConfig {
	return JumpConfig{
		WindowStart: 600 * time.Millisecond,
		WindowEnd:   800 * time.Millisecond,
		Button:      input.ButtonA,
	}
}

func (cfg JumpConfig) Validate() error {
	if cfg.WindowStart < 0 || cfg.WindowEnd <= cfg.WindowStart {
		return command.Misconfigured("need 0 <= window_start < window_end")
	}
	if !cfg.Button.Valid() {
		return command.Misconfigured("button is not set")
	}
	return nil
}

// timingWindow resolves a single press against a time window
type timingWindow struct {
	window  command.Window
	button  input.Button
	elapsed time.Duration
}

func newTimingWindow(cfg JumpConfig) timingWindow {
	return timingWindow{
		window: command.Window{Start: command.Ms(cfg.WindowStart), End: command.Ms(cfg.WindowEnd)},
		button: cfg.Button,
	}
}

// step advances the window; done reports a verdict for this tick
func (w *timingWindow) step(c *command.Command) (result command.Result, done bool) {
	w.elapsed += c.Elapsed()
	at := command.Ms(w.elapsed)

	if c.AutoComplete() {
		if w.window.Contains(at) {
			return command.Success, true
		}
	} else if c.Pressed(w.button) {
		if w.window.Contains(at) {
			return command.Success, true
		}
		return command.Failure, true
	}

	if w.window.After(at) {
		return command.Failure, true
	}
	return command.Failure, false
}

func (w *timingWindow) reset() { w.elapsed = 0 }

// Jump succeeds on a single press inside the timing window
type Jump struct {
	cfg JumpConfig
	tw  timingWindow
}

func NewJump(cfg JumpConfig) *Jump {
	return &Jump{cfg: cfg, tw: newTimingWindow(cfg)}
}

func (g *Jump) Name() string { return "Jump" }

func (g *Jump) Start(c *command.Command, args []any) error {
	g.tw.reset()
	return nil
}

func (g *Jump) Tick(c *command.Command) {
	result, done := g.tw.step(c)
	if !done {
		return
	}
	if result == command.Success {
		c.SendRank(command.RankNice)
	}
	c.Complete(result)
}

func (g *Jump) End() { g.tw.reset() }

func (g *Jump) Progress() float64 {
	if g.tw.window.End <= 0 {
		return 0
	}
	return command.Ms(g.tw.elapsed) / g.tw.window.End
}
