package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/vmath"
)

// RestoreType is what a collected icon gives
type RestoreType uint8

const (
	RestoreHP RestoreType = iota
	RestoreFP
	RestorePoison
)

func (r RestoreType) String() string {
	switch r {
	case RestoreHP:
		return "hp"
	case RestoreFP:
		return "fp"
	case RestorePoison:
		return "poison"
	default:
		return "unknown"
	}
}

func (r *RestoreType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "hp":
		*r = RestoreHP
	case "fp":
		*r = RestoreFP
	case "poison":
		*r = RestorePoison
	default:
		return fmt.Errorf("unknown restore type %q", text)
	}
	return nil
}

// Icon is a collectible on the field
type Icon struct {
	ID       int
	Type     RestoreType
	Amount   int
	Position vmath.Vec2
	Radius   float64

	age time.Duration
}

// IconSpawner feeds collectibles to SweetTreat
type IconSpawner interface {
	// Start resets the field for a new run
	Start(rng command.Rand)
	// Update spawns and expires icons
	Update(dt time.Duration)
	// Active lists collectible icons
	Active() []*Icon
	// Collect removes a hit icon
	Collect(icon *Icon)
	// Exhausted is true once every icon spawned and none remain
	Exhausted() bool
	// Clear drops all icons
	Clear()
}

// IconKind weights one restore type in the spawn table
type IconKind struct {
	Type   RestoreType `toml:"type"`
	Amount int         `toml:"amount"`
	Weight int         `toml:"weight"`
}

// IconFieldConfig tunes the default spawner
type IconFieldConfig struct {
	Count         int           `toml:"count"`
	SpawnInterval time.Duration `toml:"spawn_interval"`
	Lifetime      time.Duration `toml:"lifetime"`
	Area          vmath.Rect    `toml:"area"`
	Radius        float64       `toml:"radius"`
	Kinds         []IconKind    `toml:"kinds"`
}

func DefaultIconFieldConfig() IconFieldConfig {
	return IconFieldConfig{
		Count:         12,
		SpawnInterval: 400 * time.Millisecond,
		Lifetime:      2 * time.Second,
		Area:          vmath.Rect{Min: vmath.V(20, -40), Max: vmath.V(80, 40)},
		Radius:        4,
		Kinds: []IconKind{
			{Type: RestoreHP, Amount: 1, Weight: 3},
			{Type: RestoreFP, Amount: 1, Weight: 3},
			{Type: RestorePoison, Amount: 0, Weight: 1},
		},
	}
}

func (cfg IconFieldConfig) Validate() error {
	if cfg.Count <= 0 || cfg.SpawnInterval <= 0 || cfg.Lifetime <= 0 {
		return command.Misconfigured("icon field count, spawn_interval and lifetime must be positive")
	}
	total := 0
	for _, k := range cfg.Kinds {
		if k.Weight < 0 {
			return command.Misconfigured("icon weight cannot be negative")
		}
		total += k.Weight
	}
	if total == 0 {
		return command.Misconfigured("icon field needs at least one weighted kind")
	}
	return nil
}

// IconField spawns a fixed number of icons at an interval inside an area
type IconField struct {
	cfg     IconFieldConfig
	rng     command.Rand
	active  []*Icon
	spawned int
	nextIn  time.Duration
}

func NewIconField(cfg IconFieldConfig) *IconField {
	return &IconField{cfg: cfg}
}

func (f *IconField) Start(rng command.Rand) {
	f.rng = rng
	f.active = f.active[:0]
	f.spawned = 0
	f.nextIn = 0
}

func (f *IconField) Update(dt time.Duration) {
	kept := f.active[:0]
	for _, icon := range f.active {
		icon.age += dt
		if icon.age < f.cfg.Lifetime {
			kept = append(kept, icon)
		}
	}
	f.active = kept

	f.nextIn -= dt
	for f.nextIn <= 0 && f.spawned < f.cfg.Count {
		f.spawn()
		f.nextIn += f.cfg.SpawnInterval
	}
}

func (f *IconField) spawn() {
	kind := f.pickKind()
	area := f.cfg.Area
	pos := vmath.V(
		vmath.Lerp(area.Min.X, area.Max.X, f.rng.Float64()),
		vmath.Lerp(area.Min.Y, area.Max.Y, f.rng.Float64()),
	)
	f.active = append(f.active, &Icon{
		ID:       f.spawned,
		Type:     kind.Type,
		Amount:   kind.Amount,
		Position: pos,
		Radius:   f.cfg.Radius,
	})
	f.spawned++
}

func (f *IconField) pickKind() IconKind {
	total := 0
	for _, k := range f.cfg.Kinds {
		total += k.Weight
	}
	roll := f.rng.Intn(total)
	for _, k := range f.cfg.Kinds {
		if roll < k.Weight {
			return k
		}
		roll -= k.Weight
	}
	return f.cfg.Kinds[len(f.cfg.Kinds)-1]
}

func (f *IconField) Active() []*Icon { return f.active }

func (f *IconField) Collect(icon *Icon) {
	for i, a := range f.active {
		if a == icon {
			f.active = append(f.active[:i], f.active[i+1:]...)
			return
		}
	}
}

func (f *IconField) Exhausted() bool {
	return f.spawned >= f.cfg.Count && len(f.active) == 0
}

func (f *IconField) Clear() {
	f.active = nil
	f.spawned = 0
	f.nextIn = 0
}
