package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/action-command/engine"
	"github.com/lixenwraith/action-command/input"
)

// Config is the demo runtime configuration, read from the environment then flags
type Config struct {
	MovesPath    string        `env:"ACTION_COMMAND_MOVES"`
	KeysPath     string        `env:"ACTION_COMMAND_KEYS"`
	Move         string        `env:"ACTION_COMMAND_MOVE" envDefault:"Gulp"`
	Seed         uint64        `env:"ACTION_COMMAND_SEED"`
	TickRate     time.Duration `env:"ACTION_COMMAND_TICK_RATE" envDefault:"16ms"`
	HoldTimeout  time.Duration `env:"ACTION_COMMAND_HOLD_TIMEOUT" envDefault:"120ms"`
	RepeatGap    time.Duration `env:"ACTION_COMMAND_REPEAT_GAP" envDefault:"60ms"`
	LogFile      string        `env:"ACTION_COMMAND_LOG_FILE" envDefault:"action-command.log"`
	LogLevel     string        `env:"ACTION_COMMAND_LOG_LEVEL" envDefault:"info"`
	AutoComplete bool          `env:"ACTION_COMMAND_AUTO_COMPLETE"`

	List bool
}

// loadConfig parses the environment, then lets flags override it
func loadConfig(args []string, output io.Writer) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("action-command", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Move, "move", cfg.Move, "Move name to run")
	fs.StringVar(&cfg.MovesPath, "moves", cfg.MovesPath, "Move data TOML file (default: ./moves.toml, then built-in)")
	fs.StringVar(&cfg.KeysPath, "keys", cfg.KeysPath, "Key binding TOML file")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 picks one")
	fs.BoolVar(&cfg.AutoComplete, "auto", cfg.AutoComplete, "Force the auto-complete path")
	fs.BoolVar(&cfg.List, "list", false, "List moves and exit")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.TickRate <= 0 {
		cfg.TickRate = engine.DefaultTickInterval
	}
	if cfg.HoldTimeout <= 0 {
		cfg.HoldTimeout = input.DefaultHoldTimeout
	}
	if cfg.RepeatGap <= 0 {
		cfg.RepeatGap = input.DefaultRepeatGap
	}
	return cfg, nil
}
