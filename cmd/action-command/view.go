package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/action-command/command"
	"github.com/lixenwraith/action-command/status"
)

const barWidth = 40

type progresser interface {
	Progress() float64
}

// view renders the run as a few status lines
type view struct {
	screen tcell.Screen
	reg    *status.Registry
	move   string
}

var (
	styleDefault = tcell.StyleDefault
	styleBar     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSuccess = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleFailure = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (v *view) draw(cmd *command.Command, rec *command.Recorder) {
	v.screen.Clear()

	v.text(0, 0, styleDefault, fmt.Sprintf("%s (%s)  state=%s  run=%d", v.move, cmd.Name(), cmd.State(), cmd.Runs()))

	if p, ok := cmd.Game().(progresser); ok {
		v.bar(0, 1, p.Progress())
	}

	if res, ok := cmd.Result(); ok {
		style := styleSuccess
		label := "SUCCESS"
		if res == command.Failure {
			style, label = styleFailure, "FAILED"
		}
		if r := rec.LastRank(); r != command.RankNone {
			label += " " + r.String()
		}
		v.text(0, 2, style, label)
	}

	if resp := rec.Responses(); len(resp) > 0 {
		v.text(0, 3, styleDefault, fmt.Sprintf("last response: %v", resp[len(resp)-1]))
	}

	v.text(0, 5, styleDim, strings.Join(v.reg.Snapshot(), "  "))
	v.text(0, 6, styleDim, "arrows: move  a/space: confirm  b x z c: actions  r: restart  esc: quit")
	v.screen.Show()
}

func (v *view) bar(x, y int, fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	filled := int(fraction * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	v.screen.SetContent(x, y, '[', nil, styleDefault)
	for i := 0; i < barWidth; i++ {
		r, style := '·', styleDim
		if i < filled {
			r, style = '█', styleBar
		}
		v.screen.SetContent(x+1+i, y, r, nil, style)
	}
	v.screen.SetContent(x+1+barWidth, y, ']', nil, styleDefault)
}

func (v *view) text(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
