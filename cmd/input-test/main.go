package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/action-command/engine"
	"github.com/lixenwraith/action-command/input"
)

// Button probe: shows how raw key events resolve into per-tick held/pressed levels
func main() {
	keysPath := flag.String("keys", "", "Key binding TOML file")
	hold := flag.Duration("hold", input.DefaultHoldTimeout, "Hold timeout between key repeats")
	gap := flag.Duration("gap", input.DefaultRepeatGap, "Longest spacing read as auto-repeat")
	flag.Parse()

	keys := input.DefaultKeyMap()
	if *keysPath != "" {
		f, err := os.Open(*keysPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open keys: %v\n", err)
			os.Exit(1)
		}
		keys, err = input.LoadKeyMap(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "load keys: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	term := input.NewTerminal(keys, *hold, *gap)

	// Event log (last N events)
	const maxLog = 10
	eventLog := make([]string, 0, maxLog)
	addLog := func(s string) {
		if len(eventLog) >= maxLog {
			copy(eventLog, eventLog[1:])
			eventLog = eventLog[:maxLog-1]
		}
		eventLog = append(eventLog, s)
	}

	presses := [input.ButtonCount]int{}
	loop := engine.NewLoop(engine.DefaultTickInterval, nil)
	_ = loop.Run(context.Background(), func(clk *engine.TickClock) bool {
		now := clk.Active()
		for drained := false; !drained; {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
						return false
					}
					mapped := term.HandleKey(ev, now)
					addLog(formatKey(ev, keys.Lookup(ev), mapped, now))
				case *tcell.EventResize:
					screen.Sync()
					w, h := ev.Size()
					addLog(fmt.Sprintf("RESIZE: %dx%d", w, h))
				}
			default:
				drained = true
			}
		}

		term.Sync(now)
		for b := input.ButtonUp; b < input.ButtonCount; b++ {
			if term.Pressed(b) {
				presses[b]++
			}
		}
		render(screen, eventLog, term, presses, clk)
		return true
	})
}

func render(screen tcell.Screen, eventLog []string, term *input.Terminal, presses [input.ButtonCount]int, clk *engine.TickClock) {
	screen.Clear()
	title := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	text(screen, 1, 0, title, "Input Test - Press keys to see button levels - Ctrl+C to quit")
	for i, entry := range eventLog {
		text(screen, 1, 2+i, tcell.StyleDefault, entry)
	}

	y := 3 + len(eventLog)
	for b := input.ButtonUp; b < input.ButtonCount; b++ {
		style := dim
		mark := "  "
		switch {
		case term.Pressed(b):
			style, mark = tcell.StyleDefault.Foreground(tcell.ColorYellow), "P "
		case term.Held(b):
			style, mark = tcell.StyleDefault.Foreground(tcell.ColorGreen), "H "
		}
		text(screen, 1, y, style, fmt.Sprintf("%s%-6s presses=%d", mark, b, presses[b]))
		y++
	}

	text(screen, 1, y+1, dim, fmt.Sprintf("t=%v dt=%v", clk.Active().Truncate(time.Millisecond), clk.Elapsed()))
	screen.Show()
}

func formatKey(ev *tcell.EventKey, b input.Button, mapped bool, now time.Duration) string {
	target := "unmapped"
	if mapped {
		target = "-> " + strings.ToUpper(b.String())
	}
	return fmt.Sprintf("KEY: %-12s %-10s @ %v", ev.Name(), target, now.Truncate(time.Millisecond))
}

func text(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
