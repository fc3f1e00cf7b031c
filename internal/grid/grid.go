// Package grid holds the two parallel buffers the evaluator operates on:
// glyph bytes (the program) and per-cell mark flags (transient, reset each
// tick). Addressing is bounds-checked (y, x) access over a flat backing
// slice, the same discipline a bank:offset memory bus uses, generalized
// to a row/column grid.
package grid

import "orca-core/internal/glyph"

// Mark flag bits. LOCK and SLEEP are evaluation-relevant; INPUT, OUTPUT,
// and PARAM are advisory metadata for external tooling.
const (
	Lock  byte = 1 << iota // cell reserved by a preceding operator this tick
	Sleep                  // cell was written into this tick
	Input                  // cell is read by some operator (advisory)
	Output                 // cell is written by some operator (advisory)
	Param                  // cell is a parameter input (advisory, aka HASTE_INPUT)
)

// Grid is a rectangular playfield of glyphs with a parallel mark buffer.
type Grid struct {
	Width, Height int
	Cells         []glyph.Glyph
	Marks         []byte
}

// New creates a width x height grid, every cell initialized to Empty.
func New(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]glyph.Glyph, width*height),
		Marks:  make([]byte, width*height),
	}
	for i := range g.Cells {
		g.Cells[i] = glyph.Empty
	}
	return g
}

// FromRows builds a grid from rectangular rows of glyph bytes. Short rows
// are padded with Empty; an empty slice yields a 0x0 grid.
func FromRows(rows [][]byte) *Grid {
	height := len(rows)
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	g := New(width, height)
	for y, row := range rows {
		for x, b := range row {
			g.SetGlyph(y, x, glyph.Glyph(b))
		}
	}
	return g
}

// InBounds reports whether (y, x) addresses a real cell.
func (g *Grid) InBounds(y, x int) bool {
	return y >= 0 && y < g.Height && x >= 0 && x < g.Width
}

func (g *Grid) index(y, x int) int {
	return y*g.Width + x
}

// Glyph reads the glyph at (y, x). Out-of-bounds reads return Empty.
func (g *Grid) Glyph(y, x int) glyph.Glyph {
	if !g.InBounds(y, x) {
		return glyph.Empty
	}
	return g.Cells[g.index(y, x)]
}

// SetGlyph writes the glyph at (y, x). Out-of-bounds writes are ignored.
func (g *Grid) SetGlyph(y, x int, v glyph.Glyph) {
	if !g.InBounds(y, x) {
		return
	}
	g.Cells[g.index(y, x)] = v
}

// MarkAt reads the mark flags at (y, x). Out-of-bounds reads return 0.
func (g *Grid) MarkAt(y, x int) byte {
	if !g.InBounds(y, x) {
		return 0
	}
	return g.Marks[g.index(y, x)]
}

// OrMark ORs flags into the mark byte at (y, x). Out-of-bounds is a no-op.
func (g *Grid) OrMark(y, x int, flags byte) {
	if !g.InBounds(y, x) {
		return
	}
	g.Marks[g.index(y, x)] |= flags
}

// ResetMarks clears every mark flag. Called once at the start of each tick.
func (g *Grid) ResetMarks() {
	for i := range g.Marks {
		g.Marks[i] = 0
	}
}

// Dispatchable reports whether the cell at (y, x) may be dispatched this
// tick: it is neither locked nor asleep.
func (g *Grid) Dispatchable(y, x int) bool {
	return g.MarkAt(y, x)&(Lock|Sleep) == 0
}

// HasBangNeighbor reports whether any of the four orthogonal neighbors of
// (y, x), clamped to the grid, holds a bang glyph.
func (g *Grid) HasBangNeighbor(y, x int) bool {
	return g.Glyph(y-1, x) == glyph.Bang ||
		g.Glyph(y+1, x) == glyph.Bang ||
		g.Glyph(y, x-1) == glyph.Bang ||
		g.Glyph(y, x+1) == glyph.Bang
}

// String renders the grid as newline-separated rows, for debugging and CLI
// output.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.Width+1)*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			buf = append(buf, byte(g.Glyph(y, x)))
		}
		if y < g.Height-1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}

// Cursor is an operator's view of the grid, anchored at the cell it is
// dispatching from. Offsets follow spec convention: (0,-1) is west, (1,0)
// is south.
type Cursor struct {
	Grid *Grid
	Y, X int
}

// At returns a cursor anchored at (y, x) on g.
func At(g *Grid, y, x int) Cursor {
	return Cursor{Grid: g, Y: y, X: x}
}

func (c Cursor) abs(dy, dx int) (int, int) {
	return c.Y + dy, c.X + dx
}

// Peek reads the glyph at an offset from the cursor. Out of bounds yields
// Empty.
func (c Cursor) Peek(dy, dx int) glyph.Glyph {
	y, x := c.abs(dy, dx)
	return c.Grid.Glyph(y, x)
}

// Poke writes a glyph at an offset from the cursor. It does not set SLEEP;
// callers that must suppress re-dispatch this tick should use PokeStunned.
func (c Cursor) Poke(dy, dx int, v glyph.Glyph) {
	y, x := c.abs(dy, dx)
	c.Grid.SetGlyph(y, x, v)
}

// PokeStunned writes a glyph at an offset and marks the destination SLEEP,
// so it is not itself dispatched later in this tick.
func (c Cursor) PokeStunned(dy, dx int, v glyph.Glyph) {
	c.Poke(dy, dx, v)
	c.Stun(dy, dx)
}

// Stun sets SLEEP at an offset without writing a glyph.
func (c Cursor) Stun(dy, dx int) {
	y, x := c.abs(dy, dx)
	c.Grid.OrMark(y, x, Sleep)
}

// LockAt sets LOCK at an offset.
func (c Cursor) LockAt(dy, dx int) {
	y, x := c.abs(dy, dx)
	c.Grid.OrMark(y, x, Lock)
}

// Port marks a cell with flags XOR LOCK — the convention that lets an
// operator advertise a port as INPUT/OUTPUT while *clearing* LOCK so a
// later operator (G, X) may still write into it this tick.
func (c Cursor) Port(dy, dx int, flags byte) {
	y, x := c.abs(dy, dx)
	set := flags ^ Lock
	if set&Lock == 0 && c.Grid.InBounds(y, x) {
		c.Grid.Marks[c.Grid.index(y, x)] &^= Lock
	}
	c.Grid.OrMark(y, x, set)
}

// MarkAt reads the mark flags at an offset from the cursor.
func (c Cursor) MarkAt(dy, dx int) byte {
	y, x := c.abs(dy, dx)
	return c.Grid.MarkAt(y, x)
}

// Bang reports whether the cursor's own cell has a neighboring bang.
func (c Cursor) Bang() bool {
	return c.Grid.HasBangNeighbor(c.Y, c.X)
}
