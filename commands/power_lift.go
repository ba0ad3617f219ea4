package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
)

// PowerLiftIcon occupies a grid cell
type PowerLiftIcon uint8

const (
	IconEmpty PowerLiftIcon = iota
	IconPoison
	IconAttack
	IconDefense
)

func (i PowerLiftIcon) String() string {
	switch i {
	case IconEmpty:
		return "empty"
	case IconPoison:
		return "poison"
	case IconAttack:
		return "attack"
	case IconDefense:
		return "defense"
	default:
		return fmt.Sprintf("icon(%d)", uint8(i))
	}
}

func (i *PowerLiftIcon) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "empty", "none":
		*i = IconEmpty
	case "poison":
		*i = IconPoison
	case "attack":
		*i = IconAttack
	case "defense":
		*i = IconDefense
	default:
		return fmt.Errorf("unknown power lift icon %q", text)
	}
	return nil
}

// PowerLiftResponse reports boost counters whenever one increments
type PowerLiftResponse struct {
	AttackBoosts  int
	DefenseBoosts int
}

// PowerLiftConfig tunes PowerLift
type PowerLiftConfig struct {
	Rows     int           `toml:"rows"`
	Cols     int           `toml:"cols"`
	Duration time.Duration `toml:"duration"`
	// MoveTime is the cursor travel time between adjacent cells
	MoveTime time.Duration `toml:"move_time"`
	// RespawnDelays is the candidate table for refilling an empty cell
	RespawnDelays []time.Duration `toml:"respawn_delays"`
	// IconLifetime removes uncollected icons; zero keeps them
	IconLifetime   time.Duration `toml:"icon_lifetime"`
	Threshold      int           `toml:"threshold"`
	PoisonDuration time.Duration `toml:"poison_duration"`
	Button         input.Button  `toml:"button"`
}

func DefaultPowerLiftConfig() PowerLiftConfig {
	return PowerLiftConfig{
		Rows:     3,
		Cols:     3,
		Duration: 10 * time.Second,
		MoveTime: 100 * time.Millisecond,
		RespawnDelays: []time.Duration{
			250 * time.Millisecond,
			500 * time.Millisecond,
			750 * time.Millisecond,
			time.Second,
		},
		IconLifetime:   1500 * time.Millisecond,
		Threshold:      5,
		PoisonDuration: 2 * time.Second,
		Button:         input.ButtonConfirm,
	}
}

func (cfg PowerLiftConfig) Validate() error {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return command.Misconfigured("grid must be at least 1x1, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Duration <= 0 || cfg.MoveTime < 0 || cfg.IconLifetime < 0 {
		return command.Misconfigured("invalid power lift timings")
	}
	if cfg.PoisonDuration <= 0 {
		return command.Misconfigured("poison_duration must be positive")
	}
	if len(cfg.RespawnDelays) == 0 {
		return command.Misconfigured("respawn_delays is empty")
	}
	for _, d := range cfg.RespawnDelays {
		if d < 0 {
			return command.Misconfigured("respawn delay %v is negative", d)
		}
	}
	if cfg.Threshold <= 0 {
		return command.Misconfigured("threshold must be positive")
	}
	if !cfg.Button.Valid() {
		return command.Misconfigured("button is not set")
	}
	return nil
}

type powerLiftCell struct {
	icon    PowerLiftIcon
	age     time.Duration
	respawn time.Duration
}

// PowerLift is a grid minigame: walk the cursor between cells and select
// attack or defense icons; every Threshold selections of a kind is a boost
type PowerLift struct {
	cfg   PowerLiftConfig
	grid  []powerLiftCell
	timer command.Timer
	rng   command.Rand

	row, col             int
	toRow, toCol         int
	moving               bool
	moveElapsed          time.Duration
	poisoned             time.Duration
	attackSel, defendSel int
	boosts               PowerLiftResponse
}

func NewPowerLift(cfg PowerLiftConfig) *PowerLift {
	return &PowerLift{cfg: cfg}
}

func (g *PowerLift) Name() string { return "PowerLift" }

func (g *PowerLift) Start(c *command.Command, args []any) error {
	g.rng = c.Rand()
	g.timer = command.NewTimer(g.cfg.Duration)
	g.grid = make([]powerLiftCell, g.cfg.Rows*g.cfg.Cols)
	for i := range g.grid {
		g.grid[i].respawn = g.respawnDelay()
	}
	g.row, g.col = g.cfg.Rows/2, g.cfg.Cols/2
	g.toRow, g.toCol = g.row, g.col
	g.moving = false
	g.moveElapsed = 0
	g.poisoned = 0
	g.attackSel, g.defendSel = 0, 0
	g.boosts = PowerLiftResponse{}
	return nil
}

func (g *PowerLift) AttackSelections() int { return g.attackSel }
func (g *PowerLift) AttackBoosts() int { return g.boosts.AttackBoosts }
func (g *PowerLift) DefenseSelections() int { return g.defendSel }
func (g *PowerLift) DefenseBoosts() int { return g.boosts.DefenseBoosts }
func (g *PowerLift) IsPoisoned() bool { return g.poisoned > 0 }

// Cursor returns the cell the cursor rests on or is leaving
func (g *PowerLift) Cursor() (row, col int) { return g.row, g.col }

// Cell returns the icon at row, col
func (g *PowerLift) Cell(row, col int) PowerLiftIcon {
	if !g.inGrid(row, col) || g.grid == nil {
		return IconEmpty
	}
	return g.grid[row*g.cfg.Cols+col].icon
}

// Progress is the fraction of the run time used
func (g *PowerLift) Progress() float64 {
	return float64(g.timer.Elapsed()) / float64(g.cfg.Duration)
}

func (g *PowerLift) Tick(c *command.Command) {
	dt := c.Elapsed()
	if g.timer.Advance(dt) {
		if g.boosts.AttackBoosts+g.boosts.DefenseBoosts > 0 {
			c.Complete(command.Success)
		} else {
			c.Complete(command.Failure)
		}
		return
	}

	if g.poisoned > 0 {
		g.poisoned -= dt
	}
	g.updateCells(dt)

	if c.AutoComplete() {
		g.autoSelect(c)
		return
	}

	g.moveCursor(c, dt)
	if !g.moving && c.Pressed(g.cfg.Button) {
		g.selectCell(c, g.row, g.col)
	}
}

func (g *PowerLift) updateCells(dt time.Duration) {
	for i := range g.grid {
		cell := &g.grid[i]
		if cell.icon == IconEmpty {
			cell.respawn -= dt
			if cell.respawn <= 0 {
				cell.icon = PowerLiftIcon(1 + g.rng.Intn(3))
				cell.age = 0
			}
			continue
		}
		cell.age += dt
		if g.cfg.IconLifetime > 0 && cell.age >= g.cfg.IconLifetime {
			g.clearCell(i)
		}
	}
}

func (g *PowerLift) moveCursor(c *command.Command, dt time.Duration) {
	if g.moving {
		g.moveElapsed += dt
		// Lerp delay; poison halves travel speed
		moveTime := g.cfg.MoveTime
		if g.poisoned > 0 {
			moveTime *= 2
		}
		if moveTime <= 0 || float64(g.moveElapsed)/float64(moveTime) >= 1 {
			g.row, g.col = g.toRow, g.toCol
			g.moving = false
			g.moveElapsed = 0
		}
		return
	}

	dr, dc := 0, 0
	switch {
	case c.Pressed(input.ButtonUp):
		dr = -1
	case c.Pressed(input.ButtonDown):
		dr = 1
	case c.Pressed(input.ButtonLeft):
		dc = -1
	case c.Pressed(input.ButtonRight):
		dc = 1
	default:
		return
	}
	if !g.inGrid(g.row+dr, g.col+dc) {
		return
	}
	g.toRow, g.toCol = g.row+dr, g.col+dc
	g.moving = true
	g.moveElapsed = 0
}

func (g *PowerLift) autoSelect(c *command.Command) {
	for i, cell := range g.grid {
		if cell.icon == IconAttack || cell.icon == IconDefense {
			g.selectCell(c, i/g.cfg.Cols, i%g.cfg.Cols)
			return
		}
	}
}

// selectCell consumes the icon at row, col
func (g *PowerLift) selectCell(c *command.Command, row, col int) {
	i := row*g.cfg.Cols + col
	icon := g.grid[i].icon
	if icon == IconEmpty {
		return
	}
	g.clearCell(i)

	switch icon {
	case IconPoison:
		g.poisoned = g.cfg.PoisonDuration
	case IconAttack:
		g.attackSel++
		if g.attackSel >= g.cfg.Threshold {
			g.attackSel = 0
			g.boosts.AttackBoosts++
			c.SendResponse(g.boosts)
		}
	case IconDefense:
		g.defendSel++
		if g.defendSel >= g.cfg.Threshold {
			g.defendSel = 0
			g.boosts.DefenseBoosts++
			c.SendResponse(g.boosts)
		}
	}
}

func (g *PowerLift) clearCell(i int) {
	g.grid[i] = powerLiftCell{respawn: g.respawnDelay()}
}

func (g *PowerLift) respawnDelay() time.Duration {
	return g.cfg.RespawnDelays[g.rng.Intn(len(g.cfg.RespawnDelays))]
}

func (g *PowerLift) inGrid(row, col int) bool {
	return row >= 0 && row < g.cfg.Rows && col >= 0 && col < g.cfg.Cols
}

func (g *PowerLift) End() {
	g.grid = nil
	g.moving = false
	g.poisoned = 0
}
