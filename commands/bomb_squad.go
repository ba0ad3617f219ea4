package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
	"github.com/lixenwraith/action-command/vmath"
)

// Throw is the response sent for every bomb thrown
type Throw struct {
	Index    int
	Angle    float64
	Position vmath.Vec2
	Velocity vmath.Vec2
}

// BombSquadConfig tunes BombSquad
type BombSquadConfig struct {
	Orbit         OrbitConfig `toml:"orbit"`
	ThrowVelocity vmath.Vec2  `toml:"throw_velocity"`
	BombCount     int         `toml:"bomb_count"`
	// AutoThrowAfter throws on its own when no press came in time
	AutoThrowAfter time.Duration `toml:"auto_throw_after"`
	// CursorLinger keeps the run open after the last throw
	CursorLinger time.Duration `toml:"cursor_linger"`
	Button       input.Button  `toml:"button"`
}

func DefaultBombSquadConfig() BombSquadConfig {
	return BombSquadConfig{
		Orbit:          DefaultOrbitConfig(),
		ThrowVelocity:  vmath.V(30, 30),
		BombCount:      3,
		AutoThrowAfter: 2 * time.Second,
		CursorLinger:   500 * time.Millisecond,
		Button:         input.ButtonA,
	}
}

func (cfg BombSquadConfig) Validate() error {
	if !cfg.Orbit.valid() {
		return command.Misconfigured("orbit needs min_angle < max_angle and non-negative speed and radius")
	}
	if cfg.BombCount <= 0 {
		return command.Misconfigured("bomb_count must be positive")
	}
	if cfg.AutoThrowAfter <= 0 {
		return command.Misconfigured("auto_throw_after must be positive")
	}
	if cfg.CursorLinger < 0 {
		return command.Misconfigured("cursor_linger cannot be negative")
	}
	if !cfg.Button.Valid() {
		return command.Misconfigured("button is not set")
	}
	return nil
}

// BombSquad throws a fixed number of bombs along a swinging cursor, then
// waits for the cursor linger before succeeding
type BombSquad struct {
	cfg    BombSquadConfig
	cursor orbitCursor
	thrown int
	since  command.Timer
	linger command.Timer
}

func NewBombSquad(cfg BombSquadConfig) *BombSquad {
	return &BombSquad{cfg: cfg, cursor: newOrbitCursor(cfg.Orbit)}
}

func (g *BombSquad) Name() string { return "BombSquad" }

func (g *BombSquad) Start(c *command.Command, args []any) error {
	g.cursor.reset()
	g.thrown = 0
	g.since = command.NewTimer(g.cfg.AutoThrowAfter)
	g.linger = command.NewTimer(g.cfg.CursorLinger)
	return nil
}

// Cursor returns the cursor position on the arc
func (g *BombSquad) Cursor() vmath.Vec2 { return g.cursor.position() }

// Thrown returns bombs thrown this run
func (g *BombSquad) Thrown() int { return g.thrown }

func (g *BombSquad) Tick(c *command.Command) {
	dt := c.Elapsed()
	g.cursor.step(dt)

	if g.thrown >= g.cfg.BombCount {
		if g.linger.Advance(dt) {
			c.Complete(command.Success)
		}
		return
	}

	if c.AutoComplete() || c.Pressed(g.cfg.Button) || g.since.Advance(dt) {
		g.throw(c)
	}
}

func (g *BombSquad) throw(c *command.Command) {
	c.SendResponse(Throw{
		Index:    g.thrown,
		Angle:    g.cursor.angle,
		Position: g.cursor.position(),
		Velocity: g.cursor.throwVelocity(g.cfg.ThrowVelocity),
	})
	g.thrown++
	g.since.Reset()
}

func (g *BombSquad) End() {
	g.cursor.reset()
	g.thrown = 0
	g.since.Reset()
	g.linger.Reset()
}

func (g *BombSquad) Progress() float64 {
	return float64(g.thrown) / float64(g.cfg.BombCount)
}
