package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/engine"
	"github.com/lixenwraith/action-command/input"
	"github.com/lixenwraith/action-command/movedata"
	"github.com/lixenwraith/action-command/status"
	"github.com/lixenwraith/action-command/vmath"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "action-command: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args, os.Stderr)
	if err != nil {
		return err
	}

	moves, err := movedata.LoadAuto(cfg.MovesPath)
	if err != nil {
		return err
	}
	if cfg.List {
		for _, name := range moves.Names() {
			m, _ := moves.Move(name)
			fmt.Printf("%-16s %s\n", name, m.Kind)
		}
		return nil
	}

	logger, closeLog, err := setupLogging(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	keys, err := loadKeys(cfg.KeysPath)
	if err != nil {
		return err
	}

	move, ok := moves.Move(cfg.Move)
	if !ok {
		return fmt.Errorf("%w %q (try -list)", movedata.ErrUnknownCommand, cfg.Move)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mACTION-COMMAND CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	clock := engine.NewTickClock(nil)
	clock.MaxElapsed = 4 * cfg.TickRate
	term := input.NewTerminal(keys, cfg.HoldTimeout, cfg.RepeatGap)
	reg := status.NewRegistry()
	rec := command.NewRecorder("demo")

	opts := []command.Option{
		command.WithClock(clock),
		command.WithInput(term),
		command.WithHandler(status.NewTracker(reg, move.Name, rec)),
		command.WithLogger(logger),
	}
	if cfg.Seed != 0 {
		opts = append(opts, command.WithSeed(cfg.Seed))
	}
	if cfg.AutoComplete {
		opts = append(opts, command.WithAutoComplete(true))
	}
	cmd, err := moves.Command(move.Name, opts...)
	if err != nil {
		return err
	}

	startArgs := demoArgs(move.Kind)
	if err := cmd.StartInput(startArgs...); err != nil {
		return err
	}
	logger.Info("move started", "move", move.Name, "kind", move.Kind, "tick", cfg.TickRate)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v := &view{screen: screen, reg: reg, move: move.Name}
	loop := engine.NewLoop(cfg.TickRate, clock)
	err = loop.Run(ctx, func(clk *engine.TickClock) bool {
		now := clk.Active()
		for {
			var ev tcell.Event
			select {
			case ev = <-events:
			default:
			}
			if ev == nil {
				break
			}
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				if _, resized := ev.(*tcell.EventResize); resized {
					screen.Sync()
				}
				continue
			}
			switch {
			case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC:
				return false
			case key.Key() == tcell.KeyRune && key.Rune() == 'r':
				if !cmd.AcceptingInput() {
					rec.Reset()
					if err := cmd.StartInput(startArgs...); err != nil {
						logger.Error("restart failed", "error", err)
					}
				}
			default:
				term.HandleKey(key, now)
			}
		}

		term.Sync(now)
		cmd.Update()
		v.draw(cmd, rec)
		return true
	})

	cmd.EndInput()
	logger.Info("exit", "ticks", loop.Ticks(), "runs", cmd.Runs())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func loadKeys(path string) (*input.KeyMap, error) {
	if path == "" {
		return input.DefaultKeyMap(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open key map: %w", err)
	}
	defer f.Close()
	return input.LoadKeyMap(f)
}

// demoArgs supplies start arguments for kinds that need them
func demoArgs(kind string) []any {
	switch kind {
	case "tattle":
		return []any{vmath.V(100, 0)}
	default:
		return nil
	}
}
