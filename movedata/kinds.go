package movedata

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/commands"
)

type validator interface {
	Validate() error
}

// builder decodes params over the kind's defaults and returns a game factory
type builder func(md toml.MetaData, spec moveSpec, hasParams bool) (func() command.Game, error)

// kind adapts a config default and constructor into a builder
func kind[C validator, G command.Game](defaults func() C, construct func(C) G) builder {
	return func(md toml.MetaData, spec moveSpec, hasParams bool) (func() command.Game, error) {
		cfg := defaults()
		if hasParams {
			if err := md.PrimitiveDecode(spec.Params, &cfg); err != nil {
				return nil, fmt.Errorf("decode params: %w", err)
			}
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return func() command.Game { return construct(cfg) }, nil
	}
}

var builders = map[string]builder{
	"mash_button":       kind(commands.DefaultMashButtonConfig, commands.NewMashButton),
	"mash_button_range": kind(commands.DefaultMashButtonRangeConfig, commands.NewMashButtonRange),
	"air_lift":          kind(commands.DefaultAirLiftConfig, commands.NewAirLift),
	"run_away":          kind(commands.DefaultRunAwayConfig, commands.NewRunAway),
	"rally_wink":        kind(commands.DefaultRallyWinkConfig, commands.NewRallyWink),
	"gulp":              kind(commands.DefaultGulpConfig, commands.NewGulp),
	"hammer":            kind(commands.DefaultHammerConfig, commands.NewHammer),
	"timed_light":       kind(commands.DefaultTimedLightConfig, commands.NewTimedLight),
	"multi_button":      kind(commands.DefaultMultiButtonConfig, commands.NewMultiButton),
	"tidal_wave":        kind(commands.DefaultTidalWaveConfig, commands.NewTidalWave),
	"jump":              kind(commands.DefaultJumpConfig, commands.NewJump),
	"tornado_jump":      kind(commands.DefaultTornadoJumpConfig, commands.NewTornadoJump),
	"tattle":            kind(commands.DefaultTattleConfig, commands.NewTattle),
	"shell_shield":      kind(commands.DefaultShellShieldConfig, commands.NewShellShield),
	"bomb_squad":        kind(commands.DefaultBombSquadConfig, commands.NewBombSquad),
	"power_lift":        kind(commands.DefaultPowerLiftConfig, commands.NewPowerLift),
	"sweet_treat": kind(commands.DefaultSweetTreatConfig, func(cfg commands.SweetTreatConfig) *commands.SweetTreat {
		return commands.NewSweetTreat(cfg, nil)
	}),
	"art_attack": artAttack,
}

// artAttack also resolves the detector named on the move
func artAttack(md toml.MetaData, spec moveSpec, hasParams bool) (func() command.Game, error) {
	var detector func() commands.ShapeDetector
	switch spec.Detector {
	case "", "none":
		detector = func() commands.ShapeDetector { return commands.NoShape{} }
	case "crossing":
		detector = func() commands.ShapeDetector { return commands.CrossingDetector{} }
	default:
		return nil, command.Misconfigured("unknown shape detector %q", spec.Detector)
	}
	return kind(commands.DefaultArtAttackConfig, func(cfg commands.ArtAttackConfig) *commands.ArtAttack {
		return commands.NewArtAttack(cfg, detector())
	})(md, spec, hasParams)
}

// Kinds lists the supported kind names
func Kinds() []string {
	out := make([]string, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
