package tick

import (
	"testing"

	"orca-core/internal/debug"
	"orca-core/internal/glyph"
	"orca-core/internal/grid"
	"orca-core/internal/midi"
)

func TestRunTickZeroEmitsPanic(t *testing.T) {
	g := grid.New(3, 3)
	var buf midi.Buffer
	ev := NewEvaluator()
	ev.Run(g, 0, 0, &buf)

	notes, ccs := 0, 0
	for _, e := range buf.Events() {
		switch e.(type) {
		case midi.Note:
			notes++
		case midi.CC:
			ccs++
		}
	}
	if notes != 16*128 || ccs != 16*3 {
		t.Errorf("tick 0 on an empty grid produced %d notes / %d ccs, want %d / %d", notes, ccs, 16*128, 16*3)
	}
}

func TestRunLaterTicksDoNotPanic(t *testing.T) {
	g := grid.New(3, 3)
	var buf midi.Buffer
	ev := NewEvaluator()
	ev.Run(g, 1, 0, &buf)
	if buf.Len() != 0 {
		t.Errorf("tick 1 on an empty grid should emit nothing, got %d events", buf.Len())
	}
}

func TestRunDispatchesRowMajorAndSkipsLocked(t *testing.T) {
	// An 'H' locks the cell below it; the 'A' sitting there must not fire.
	g := grid.FromRows([][]byte{
		[]byte(".H."),
		[]byte("1A3"),
		[]byte("..."),
	})
	var buf midi.Buffer
	ev := NewEvaluator()
	ev.Run(g, 1, 0, &buf)

	if got := g.Glyph(2, 1); got != glyph.Empty {
		t.Errorf("adder under a halt should not have fired, output = %q", got)
	}
}

func TestRunAdderAcrossGrid(t *testing.T) {
	g := grid.FromRows([][]byte{
		[]byte("..."),
		[]byte("1A3"),
		[]byte("..."),
	})
	var buf midi.Buffer
	ev := NewEvaluator()
	ev.Run(g, 1, 0, &buf)

	if got := g.Glyph(2, 1); got != '4' {
		t.Errorf("adder output = %q, want '4'", got)
	}
}

func TestRunReportsBreakpointHits(t *testing.T) {
	g := grid.FromRows([][]byte{[]byte(".A."), []byte("1A3"), []byte("...")})
	var buf midi.Buffer
	ev := NewEvaluator()
	ev.Breaks = debug.NewBreakpoints()
	ev.Breaks.Set(1, 1)

	hits := ev.Run(g, 1, 0, &buf)
	if len(hits) != 1 || hits[0].Y != 1 || hits[0].X != 1 {
		t.Errorf("hits = %+v, want one hit at (1,1)", hits)
	}
}

func TestRunWithoutBreaksReturnsNil(t *testing.T) {
	g := grid.FromRows([][]byte{[]byte(".A."), []byte("1A3"), []byte("...")})
	var buf midi.Buffer
	ev := NewEvaluator()
	if hits := ev.Run(g, 1, 0, &buf); hits != nil {
		t.Errorf("hits = %v, want nil when Breaks is unset", hits)
	}
}

func TestRunClearsMarksEachTick(t *testing.T) {
	g := grid.FromRows([][]byte{[]byte("H"), []byte(".")})
	var buf midi.Buffer
	ev := NewEvaluator()
	ev.Run(g, 1, 0, &buf)
	if g.MarkAt(1, 0)&grid.Lock == 0 {
		t.Fatalf("expected H to lock the cell below on tick 1")
	}
	g.SetGlyph(0, 0, glyph.Empty)
	ev.Run(g, 2, 0, &buf)
	if g.MarkAt(1, 0)&grid.Lock != 0 {
		t.Errorf("marks from a previous tick should not survive into the next")
	}
}
