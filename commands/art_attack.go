package commands

import (
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
	"github.com/lixenwraith/action-command/vmath"
)

// ShapeDetector inspects the drawn polyline after every new segment
type ShapeDetector interface {
	Detect(segments []vmath.Segment) (vmath.Rect, bool)
}

// NoShape never reports a shape
type NoShape struct{}

func (NoShape) Detect([]vmath.Segment) (vmath.Rect, bool) { return vmath.Rect{}, false }

// CrossingDetector reports a shape when the newest segment crosses an earlier,
// non-adjacent one; bounds cover the segments from the crossed one onward
type CrossingDetector struct{}

func (CrossingDetector) Detect(segments []vmath.Segment) (vmath.Rect, bool) {
	n := len(segments)
	if n < 3 {
		return vmath.Rect{}, false
	}
	last := segments[n-1]
	for i := 0; i < n-2; i++ {
		if _, ok := vmath.SegmentIntersect(segments[i], last); ok {
			return vmath.SegmentBounds(segments[i:])
		}
	}
	return vmath.Rect{}, false
}

// ArtAttackResponse carries the bounding box of a detected shape
type ArtAttackResponse struct {
	Bounds vmath.Rect
}

// ArtAttackConfig tunes ArtAttack
type ArtAttackConfig struct {
	Duration time.Duration `toml:"duration"`
	// Speed is cursor travel in units per second
	Speed float64 `toml:"speed"`
	// SegmentEvery closes a segment after this many ticks
	SegmentEvery int        `toml:"segment_every"`
	Start        vmath.Vec2 `toml:"start"`
	Bounds       vmath.Rect `toml:"bounds"`
}

func DefaultArtAttackConfig() ArtAttackConfig {
	return ArtAttackConfig{
		Duration:     5 * time.Second,
		Speed:        60,
		SegmentEvery: 10,
		Start:        vmath.V(0, 0),
		Bounds:       vmath.Rect{Min: vmath.V(-100, -100), Max: vmath.V(100, 100)},
	}
}

func (cfg ArtAttackConfig) Validate() error {
	if cfg.Duration <= 0 || cfg.Speed <= 0 {
		return command.Misconfigured("duration and speed must be positive")
	}
	if cfg.SegmentEvery <= 0 {
		return command.Misconfigured("segment_every must be positive")
	}
	if cfg.Bounds.Width() <= 0 || cfg.Bounds.Height() <= 0 {
		return command.Misconfigured("bounds are empty")
	}
	if !cfg.Bounds.Contains(cfg.Start) {
		return command.Misconfigured("start %v is outside bounds", cfg.Start)
	}
	return nil
}

// ArtAttack records a freehand polyline from directional input and hands it
// to a ShapeDetector
type ArtAttack struct {
	cfg      ArtAttackConfig
	detector ShapeDetector
	timer    command.Timer

	pos      vmath.Vec2
	vel      vmath.Vec2
	dir      vmath.Vec2
	anchor   vmath.Vec2
	ticks    int
	segments []vmath.Segment
	shapes   int
}

// NewArtAttack creates the game; a nil detector selects NoShape
func NewArtAttack(cfg ArtAttackConfig, detector ShapeDetector) *ArtAttack {
	if detector == nil {
		detector = NoShape{}
	}
	return &ArtAttack{cfg: cfg, detector: detector}
}

// Detector returns the shape detector in use
func (g *ArtAttack) Detector() ShapeDetector { return g.detector }

func (g *ArtAttack) Name() string { return "ArtAttack" }

func (g *ArtAttack) Start(c *command.Command, args []any) error {
	g.timer = command.NewTimer(g.cfg.Duration)
	g.pos = g.cfg.Start
	g.anchor = g.cfg.Start
	g.vel = vmath.Vec2{}
	g.dir = vmath.Vec2{}
	g.ticks = 0
	g.segments = g.segments[:0]
	g.shapes = 0
	return nil
}

func (g *ArtAttack) Position() vmath.Vec2 { return g.pos }
func (g *ArtAttack) Velocity() vmath.Vec2 { return g.vel }

// Segments returns a copy of the current polyline
func (g *ArtAttack) Segments() []vmath.Segment {
	out := make([]vmath.Segment, len(g.segments))
	copy(out, g.segments)
	return out
}

// Shapes returns how many shapes were detected this run
func (g *ArtAttack) Shapes() int { return g.shapes }

func (g *ArtAttack) Progress() float64 {
	return float64(g.timer.Elapsed()) / float64(g.cfg.Duration)
}

func (g *ArtAttack) Tick(c *command.Command) {
	dt := c.Elapsed()
	if g.timer.Advance(dt) {
		if g.shapes > 0 || c.AutoComplete() {
			c.Complete(command.Success)
		} else {
			c.Complete(command.Failure)
		}
		return
	}

	dir := direction(c)
	if !dir.Equal(g.dir) {
		g.closeSegment(c)
		g.dir = dir
	}

	g.vel = g.dir.Scale(g.cfg.Speed)
	next := g.pos.Add(g.vel.Scale(dt.Seconds()))
	g.pos = vmath.V(
		vmath.Clamp(next.X, g.cfg.Bounds.Min.X, g.cfg.Bounds.Max.X),
		vmath.Clamp(next.Y, g.cfg.Bounds.Min.Y, g.cfg.Bounds.Max.Y),
	)

	g.ticks++
	if g.ticks%g.cfg.SegmentEvery == 0 {
		g.closeSegment(c)
	}
}

// closeSegment appends anchor->pos if the cursor moved since the last segment
func (g *ArtAttack) closeSegment(c *command.Command) {
	if g.pos.Equal(g.anchor) {
		return
	}
	g.segments = append(g.segments, vmath.Segment{A: g.anchor, B: g.pos})
	g.anchor = g.pos

	if bounds, ok := g.detector.Detect(g.segments); ok {
		g.shapes++
		c.SendResponse(ArtAttackResponse{Bounds: bounds})
		g.segments = g.segments[:0]
	}
}

// direction reads held directional buttons as a unit vector; +Y is down
func direction(c *command.Command) vmath.Vec2 {
	var d vmath.Vec2
	if c.Held(input.ButtonLeft) {
		d.X--
	}
	if c.Held(input.ButtonRight) {
		d.X++
	}
	if c.Held(input.ButtonUp) {
		d.Y--
	}
	if c.Held(input.ButtonDown) {
		d.Y++
	}
	return d.Normalize()
}

func (g *ArtAttack) End() {
	g.segments = nil
	g.vel = vmath.Vec2{}
	g.dir = vmath.Vec2{}
}
