package commands

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/input"
)

// LightDistribution places TimedLight windows along the bar
type LightDistribution uint8

const (
	// DistributionEven spaces centers at max/(n+1) intervals
	DistributionEven LightDistribution = iota
	// DistributionEndWeighted packs centers toward the end of the bar
	DistributionEndWeighted
)

func (d LightDistribution) String() string {
	if d == DistributionEndWeighted {
		return "end_weighted"
	}
	return "even"
}

func (d *LightDistribution) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "even", "":
		*d = DistributionEven
	case "end_weighted", "endweighted":
		*d = DistributionEndWeighted
	default:
		return fmt.Errorf("unknown light distribution %q", text)
	}
	return nil
}

// LightWindows computes the acceptance window for each light
func LightWindows(maxBar float64, numLights int, lightRange float64, dist LightDistribution) []command.Window {
	windows := make([]command.Window, numLights)
	for i := 0; i < numLights; i++ {
		var center float64
		switch dist {
		case DistributionEndWeighted:
			center = maxBar * math.Sqrt(float64(i+1)/float64(numLights+1))
		default:
			center = maxBar / float64(1+numLights) * float64(i+1)
		}
		windows[i] = command.CenteredWindow(center, lightRange)
	}
	return windows
}

// TimedLightConfig tunes TimedLight
type TimedLightConfig struct {
	MaxBarValue  float64           `toml:"max_bar_value"`
	NumLights    int               `toml:"num_lights"`
	LightRange   float64           `toml:"light_range"`
	Distribution LightDistribution `toml:"distribution"`
	// SpeedScale is bar units gained per millisecond
	SpeedScale float64      `toml:"speed_scale"`
	Button     input.Button `toml:"button"`
}

func DefaultTimedLightConfig() TimedLightConfig {
	return TimedLightConfig{
		MaxBarValue:  2000,
		NumLights:    3,
		LightRange:   200,
		Distribution: DistributionEven,
		SpeedScale:   1,
		Button:       input.ButtonA,
	}
}

func (cfg TimedLightConfig) Validate() error {
	if cfg.MaxBarValue <= 0 || cfg.NumLights <= 0 {
		return command.Misconfigured("max_bar_value and num_lights must be positive")
	}
	if cfg.LightRange <= 0 {
		return command.Misconfigured("light_range must be positive")
	}
	if cfg.SpeedScale <= 0 {
		return command.Misconfigured("speed_scale must be positive")
	}
	if !cfg.Button.Valid() {
		return command.Misconfigured("button is not set")
	}
	return nil
}

// TimedLight sweeps a bar past a series of windows; each light needs a press
// inside its window, any early press or missed window fails
type TimedLight struct {
	cfg     TimedLightConfig
	windows []command.Window
	bar     command.Bar
	lit     int
}

func NewTimedLight(cfg TimedLightConfig) *TimedLight {
	return &TimedLight{
		cfg:     cfg,
		windows: LightWindows(cfg.MaxBarValue, cfg.NumLights, cfg.LightRange, cfg.Distribution),
	}
}

func (g *TimedLight) Name() string { return "TimedLight" }

func (g *TimedLight) Start(c *command.Command, args []any) error {
	if len(g.windows) == 0 {
		return command.Misconfigured("no light windows")
	}
	g.bar = command.NewBar(g.cfg.MaxBarValue)
	g.lit = 0
	return nil
}

// Windows returns a copy of the light windows
func (g *TimedLight) Windows() []command.Window {
	out := make([]command.Window, len(g.windows))
	copy(out, g.windows)
	return out
}

// Lit returns how many lights were hit this run
func (g *TimedLight) Lit() int { return g.lit }

func (g *TimedLight) Tick(c *command.Command) {
	g.bar.Fill(command.Ms(c.Elapsed())*g.cfg.SpeedScale, false)
	value := g.bar.Value()
	w := g.windows[g.lit]

	hit := false
	if c.AutoComplete() {
		hit = w.Contains(value)
	} else if c.Pressed(g.cfg.Button) {
		if !w.Contains(value) {
			c.Complete(command.Failure)
			return
		}
		hit = true
	}

	if hit {
		g.lit++
		c.SendResponse(g.lit)
		if g.lit == len(g.windows) {
			c.SendRank(command.RankNice)
			c.Complete(command.Success)
		}
		return
	}

	if w.After(value) || g.bar.Full() {
		c.Complete(command.Failure)
	}
}

func (g *TimedLight) End() {
	g.bar.Reset()
	g.lit = 0
}

func (g *TimedLight) Progress() float64 { return g.bar.Fraction() }
