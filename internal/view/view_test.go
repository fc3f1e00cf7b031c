package view

import (
	"testing"

	"github.com/gdamore/tcell"

	"orca-core/internal/grid"
	"orca-core/internal/midi"
)

func newTestView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	sim.Resize(40, 20)
	v, err := newOnScreen(sim)
	if err != nil {
		t.Fatalf("newOnScreen: %v", err)
	}
	return v, sim
}

func TestDrawRendersGlyphs(t *testing.T) {
	v, sim := newTestView(t)
	defer v.Close()

	g := grid.FromRows([][]byte{[]byte("1A3")})
	v.Draw(g, 0)

	cells, width, _ := sim.GetContents()
	for x, want := range []rune{'1', 'A', '3'} {
		got := cells[x].Runes[0]
		if got != want {
			t.Errorf("cell (%d,0) = %q, want %q", x, got, want)
		}
	}
	_ = width
}

func TestLogEventsTrimsToRecent(t *testing.T) {
	v, _ := newTestView(t)
	defer v.Close()

	var events []midi.Event
	for i := 0; i < logLines+5; i++ {
		events = append(events, midi.CC{Channel: 0, Control: i, Value: 1})
	}
	v.LogEvents(0, events)
	if len(v.log) != logLines {
		t.Errorf("log length = %d, want %d", len(v.log), logLines)
	}
}

func TestFormatEventCoversAllKinds(t *testing.T) {
	cases := []midi.Event{
		midi.Note{Channel: 0, Octave: 3, Note: 0, Velocity: 100, Duration: 8},
		midi.CC{Channel: 0, Control: 10, Value: 64},
		midi.PitchBend{Channel: 0, MSB: 64, LSB: 0},
	}
	for _, e := range cases {
		if formatEvent(5, e) == "" {
			t.Errorf("formatEvent(%#v) returned empty string", e)
		}
	}
}
