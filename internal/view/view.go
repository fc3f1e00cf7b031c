// Package view renders a grid and its recently emitted MIDI events to a
// terminal using tcell, for the orcacore play subcommand: one type owns
// the screen, and callers drive a poll/redraw loop against it tick by
// tick.
package view

import (
	"fmt"

	"github.com/gdamore/tcell"

	"orca-core/internal/glyph"
	"orca-core/internal/grid"
	"orca-core/internal/midi"
)

var (
	styleDefault = tcell.StyleDefault
	styleBang    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleLocked  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLog     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// logLines is how many recent MIDI events stay visible under the grid.
const logLines = 8

// View owns the terminal screen and the scrolling event log. It does not
// own the grid or the evaluator; callers drive ticks and pass the
// resulting state to Draw.
type View struct {
	screen tcell.Screen
	log    []string
}

// New opens the terminal screen. Callers must call Close when done.
func New() (*View, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("view: opening screen: %w", err)
	}
	return newOnScreen(s)
}

// newOnScreen wraps an already-constructed Screen (real or, in tests, a
// tcell.SimulationScreen), so Draw/LogEvents can be exercised without a
// real terminal.
func newOnScreen(s tcell.Screen) (*View, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("view: initializing screen: %w", err)
	}
	s.Clear()
	return &View{screen: s}, nil
}

// Close releases the terminal screen.
func (v *View) Close() {
	v.screen.Fini()
}

// PollEvent blocks for the next terminal event (key press, resize, ...).
func (v *View) PollEvent() tcell.Event {
	return v.screen.PollEvent()
}

// LogEvents appends a tick's MIDI events to the scrolling log, formatting
// each one as a single line.
func (v *View) LogEvents(tickNumber int, events []midi.Event) {
	for _, e := range events {
		v.log = append(v.log, formatEvent(tickNumber, e))
	}
	if len(v.log) > logLines {
		v.log = v.log[len(v.log)-logLines:]
	}
}

func formatEvent(tickNumber int, e midi.Event) string {
	switch ev := e.(type) {
	case midi.Note:
		kind := "note"
		if ev.Mono {
			kind = "mono"
		}
		return fmt.Sprintf("t%-5d %s ch%-2d oct%d note%-2d vel%-3d dur%-3d", tickNumber, kind, ev.Channel, ev.Octave, ev.Note, ev.Velocity, ev.Duration)
	case midi.CC:
		return fmt.Sprintf("t%-5d cc   ch%-2d ctl%-3d val%-3d", tickNumber, ev.Channel, ev.Control, ev.Value)
	case midi.PitchBend:
		return fmt.Sprintf("t%-5d bend ch%-2d msb%-3d lsb%-3d", tickNumber, ev.Channel, ev.MSB, ev.LSB)
	default:
		return fmt.Sprintf("t%-5d ?", tickNumber)
	}
}

// Draw paints g starting at the top-left corner, followed by a blank
// separator row and the scrolling event log, then flushes the frame.
func (v *View) Draw(g *grid.Grid, tickNumber int) {
	v.screen.Clear()

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			ch := g.Glyph(y, x)
			style := styleDefault
			marks := g.MarkAt(y, x)
			switch {
			case ch == glyph.Bang:
				style = styleBang
			case marks&grid.Lock != 0:
				style = styleLocked
			}
			v.screen.SetCell(x, y, style, rune(ch))
		}
	}

	header := fmt.Sprintf("tick %d", tickNumber)
	for i, r := range header {
		v.screen.SetCell(i, g.Height+1, styleDefault, r)
	}

	for i, line := range v.log {
		row := g.Height + 2 + i
		for j, r := range line {
			v.screen.SetCell(j, row, styleLog, r)
		}
	}

	v.screen.Show()
}
