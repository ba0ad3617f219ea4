package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
	"github.com/lixenwraith/action-command/vmath"
)

// SweetTreatResponse carries the running restore totals after every hit
type SweetTreatResponse struct {
	HP int
	FP int
}

// SweetTreatConfig tunes SweetTreat
type SweetTreatConfig struct {
	Orbit         OrbitConfig   `toml:"orbit"`
	ThrowVelocity vmath.Vec2    `toml:"throw_velocity"`
	ThrowCooldown time.Duration `toml:"throw_cooldown"`
	// PoisonDuration is how long a poison hit slows throwing
	PoisonDuration time.Duration `toml:"poison_duration"`
	// PoisonCooldownScale multiplies the cooldown while poisoned
	PoisonCooldownScale float64         `toml:"poison_cooldown_scale"`
	ProjectileRadius    float64         `toml:"projectile_radius"`
	ProjectileLifetime  time.Duration   `toml:"projectile_lifetime"`
	Field               IconFieldConfig `toml:"field"`
	Button              input.Button    `toml:"button"`
}

func DefaultSweetTreatConfig() SweetTreatConfig {
	return SweetTreatConfig{
		Orbit:               DefaultOrbitConfig(),
		ThrowVelocity:       vmath.V(120, 120),
		ThrowCooldown:       150 * time.Millisecond,
		PoisonDuration:      time.Second,
		PoisonCooldownScale: 3,
		ProjectileRadius:    2,
		ProjectileLifetime:  time.Second,
		Field:               DefaultIconFieldConfig(),
		Button:              input.ButtonA,
	}
}

func (cfg SweetTreatConfig) Validate() error {
	if !cfg.Orbit.valid() {
		return command.Misconfigured("orbit needs min_angle < max_angle and non-negative speed and radius")
	}
	if cfg.ThrowCooldown < 0 || cfg.PoisonDuration < 0 || cfg.ProjectileLifetime <= 0 {
		return command.Misconfigured("invalid throw timings")
	}
	if cfg.PoisonCooldownScale < 1 {
		return command.Misconfigured("poison_cooldown_scale must be at least 1")
	}
	if !cfg.Button.Valid() {
		return command.Misconfigured("button is not set")
	}
	return cfg.Field.Validate()
}

type projectile struct {
	pos vmath.Vec2
	vel vmath.Vec2
	age time.Duration
}

// SweetTreat throws along a swinging cursor at icons from a spawner and adds
// up what it hits; it succeeds once the spawner runs dry
type SweetTreat struct {
	cfg     SweetTreatConfig
	spawner IconSpawner
	cursor  orbitCursor

	projectiles []projectile
	cooldown    time.Duration
	poisoned    time.Duration
	totals      SweetTreatResponse
}

// NewSweetTreat creates the game; a nil spawner selects an IconField from cfg
func NewSweetTreat(cfg SweetTreatConfig, spawner IconSpawner) *SweetTreat {
	if spawner == nil {
		spawner = NewIconField(cfg.Field)
	}
	return &SweetTreat{cfg: cfg, spawner: spawner, cursor: newOrbitCursor(cfg.Orbit)}
}

func (g *SweetTreat) Name() string { return "SweetTreat" }

func (g *SweetTreat) Start(c *command.Command, args []any) error {
	g.cursor.reset()
	g.projectiles = g.projectiles[:0]
	g.cooldown = 0
	g.poisoned = 0
	g.totals = SweetTreatResponse{}
	g.spawner.Start(c.Rand())
	return nil
}

// Totals returns restore amounts collected this run
func (g *SweetTreat) Totals() SweetTreatResponse { return g.totals }

// Poisoned reports whether the throw cooldown penalty is active
func (g *SweetTreat) Poisoned() bool { return g.poisoned > 0 }

// Cursor returns the throw cursor position
func (g *SweetTreat) Cursor() vmath.Vec2 { return g.cursor.position() }

func (g *SweetTreat) Tick(c *command.Command) {
	dt := c.Elapsed()
	g.cursor.step(dt)
	g.spawner.Update(dt)

	if g.cooldown > 0 {
		g.cooldown -= dt
	}
	if g.poisoned > 0 {
		g.poisoned -= dt
	}

	if g.cooldown <= 0 && (c.AutoComplete() || c.Pressed(g.cfg.Button)) {
		g.throw()
	}

	g.moveProjectiles(dt)
	g.collide(c)

	if g.spawner.Exhausted() {
		c.Complete(command.Success)
	}
}

func (g *SweetTreat) throw() {
	g.projectiles = append(g.projectiles, projectile{
		pos: g.cursor.position(),
		vel: g.cursor.throwVelocity(g.cfg.ThrowVelocity),
	})
	g.cooldown = g.cfg.ThrowCooldown
	if g.poisoned > 0 {
		g.cooldown = time.Duration(float64(g.cooldown) * g.cfg.PoisonCooldownScale)
	}
}

func (g *SweetTreat) moveProjectiles(dt time.Duration) {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.pos = p.pos.Add(p.vel.Scale(dt.Seconds()))
		p.age += dt
		if p.age < g.cfg.ProjectileLifetime {
			kept = append(kept, p)
		}
	}
	g.projectiles = kept
}

func (g *SweetTreat) collide(c *command.Command) {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		hit := false
		for _, icon := range g.spawner.Active() {
			if vmath.CirclesOverlap(p.pos, g.cfg.ProjectileRadius, icon.Position, icon.Radius) {
				g.spawner.Collect(icon)
				g.apply(c, icon)
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, p)
		}
	}
	g.projectiles = kept
}

func (g *SweetTreat) apply(c *command.Command, icon *Icon) {
	switch icon.Type {
	case RestoreHP:
		g.totals.HP += icon.Amount
	case RestoreFP:
		g.totals.FP += icon.Amount
	case RestorePoison:
		g.poisoned = g.cfg.PoisonDuration
		return
	}
	c.SendResponse(g.totals)
}

func (g *SweetTreat) End() {
	g.spawner.Clear()
	g.projectiles = nil
	g.cooldown = 0
	g.poisoned = 0
	g.cursor.reset()
}
