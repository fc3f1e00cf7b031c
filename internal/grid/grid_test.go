package grid

import (
	"testing"

	"orca-core/internal/glyph"
)

func TestFromRowsPadsShortRows(t *testing.T) {
	g := FromRows([][]byte{
		[]byte("AB"),
		[]byte("C"),
	})
	if g.Width != 2 || g.Height != 2 {
		t.Fatalf("got %dx%d grid, want 2x2", g.Width, g.Height)
	}
	if g.Glyph(1, 1) != glyph.Empty {
		t.Errorf("short row should pad with Empty, got %q", g.Glyph(1, 1))
	}
}

func TestOutOfBoundsReadsWritesAreSafe(t *testing.T) {
	g := New(3, 3)
	if g.Glyph(-1, -1) != glyph.Empty {
		t.Errorf("out-of-bounds read should return Empty")
	}
	g.SetGlyph(10, 10, 'A') // must not panic
	g.OrMark(10, 10, Lock)  // must not panic
}

func TestDispatchable(t *testing.T) {
	g := New(3, 3)
	if !g.Dispatchable(1, 1) {
		t.Errorf("fresh cell should be dispatchable")
	}
	g.OrMark(1, 1, Lock)
	if g.Dispatchable(1, 1) {
		t.Errorf("locked cell should not be dispatchable")
	}
	g.ResetMarks()
	if !g.Dispatchable(1, 1) {
		t.Errorf("reset marks should clear LOCK")
	}
}

func TestPortClearsLock(t *testing.T) {
	g := New(3, 3)
	c := At(g, 1, 1)
	c.LockAt(0, 1)
	if g.MarkAt(1, 2)&Lock == 0 {
		t.Fatalf("expected LOCK set before Port")
	}
	c.Port(0, 1, Output|Lock)
	if g.MarkAt(1, 2)&Lock != 0 {
		t.Errorf("Port(flags|LOCK) should clear LOCK (xor convention)")
	}
	if g.MarkAt(1, 2)&Output == 0 {
		t.Errorf("Port should still set OUTPUT")
	}
}

func TestPokeStunnedSetsSleep(t *testing.T) {
	g := New(3, 3)
	c := At(g, 0, 0)
	c.PokeStunned(1, 1, 'x')
	if g.Glyph(1, 1) != 'x' {
		t.Errorf("expected glyph written")
	}
	if g.MarkAt(1, 1)&Sleep == 0 {
		t.Errorf("expected SLEEP set")
	}
}

func TestHasBangNeighbor(t *testing.T) {
	g := FromRows([][]byte{
		[]byte(".*."),
		[]byte("..."),
	})
	if !g.HasBangNeighbor(1, 1) {
		t.Errorf("(1,1) should see bang to its north")
	}
	if g.HasBangNeighbor(1, 0) {
		t.Errorf("(1,0) has no neighboring bang")
	}
}
