package commands

import (
	"math"
	"time"

	"github.com/lixenwraith/action-command/vmath"
)

// OrbitConfig describes a cursor swinging along an arc
// Angles are radians; AngularSpeed is radians per second
type OrbitConfig struct {
	Center       vmath.Vec2 `toml:"center"`
	Radius       float64    `toml:"radius"`
	MinAngle     float64    `toml:"min_angle"`
	MaxAngle     float64    `toml:"max_angle"`
	AngularSpeed float64    `toml:"angular_speed"`
}

func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		Center:       vmath.V(0, 0),
		Radius:       40,
		MinAngle:     -math.Pi / 2,
		MaxAngle:     0,
		AngularSpeed: math.Pi,
	}
}

func (cfg OrbitConfig) valid() bool {
	return cfg.MaxAngle > cfg.MinAngle && cfg.AngularSpeed >= 0 && cfg.Radius >= 0
}

// orbitCursor bounces between MinAngle and MaxAngle at constant speed
type orbitCursor struct {
	cfg   OrbitConfig
	angle float64
	dir   float64
}

func newOrbitCursor(cfg OrbitConfig) orbitCursor {
	return orbitCursor{cfg: cfg, angle: cfg.MinAngle, dir: 1}
}

func (o *orbitCursor) reset() {
	o.angle = o.cfg.MinAngle
	o.dir = 1
}

func (o *orbitCursor) step(dt time.Duration) {
	if o.cfg.MaxAngle <= o.cfg.MinAngle {
		o.angle = o.cfg.MinAngle
		return
	}
	o.angle += o.dir * o.cfg.AngularSpeed * dt.Seconds()
	// Reflect off the bounds; loop covers steps longer than the arc
	for o.angle > o.cfg.MaxAngle || o.angle < o.cfg.MinAngle {
		if o.angle > o.cfg.MaxAngle {
			o.angle = 2*o.cfg.MaxAngle - o.angle
			o.dir = -1
		} else {
			o.angle = 2*o.cfg.MinAngle - o.angle
			o.dir = 1
		}
	}
}

// position returns center + radius * (cos, sin)
func (o *orbitCursor) position() vmath.Vec2 {
	return vmath.OnCircle(o.cfg.Center, o.cfg.Radius, o.angle)
}

// throwVelocity scales the cursor direction per axis
func (o *orbitCursor) throwVelocity(speed vmath.Vec2) vmath.Vec2 {
	return vmath.FromAngle(o.angle).Mul(speed)
}
