// Package operator implements the per-glyph behaviors the tick evaluator
// dispatches to: reading and writing neighboring cells, marking ports, and
// emitting MIDI events. Each behavior is a small function taking a
// Context; none of them loop over the grid or know about row-major
// ordering — that is the evaluator's job.
package operator

import (
	"orca-core/internal/glyph"
	"orca-core/internal/grid"
	"orca-core/internal/midi"
	"orca-core/internal/state"
	"orca-core/internal/vars"
)

// Context is everything a behavior needs: its own coordinate, the grid it
// reads and writes, the tick-local variable slots, the event sink, and the
// persistent per-cell state store.
type Context struct {
	Grid   *grid.Grid
	Y, X   int
	Tick   int
	Seed   int
	Vars   *vars.Slots
	Events *midi.Buffer
	State  *state.Store
}

// Cursor returns this context's view onto the grid, anchored at its own
// cell.
func (c Context) Cursor() grid.Cursor {
	return grid.At(c.Grid, c.Y, c.X)
}

// Coord returns this context's coordinate, for persistent-state lookups.
func (c Context) Coord() state.Coord {
	return state.Coord{Y: c.Y, X: c.X}
}

// Self returns the glyph at this context's own cell.
func (c Context) Self() glyph.Glyph {
	return c.Grid.Glyph(c.Y, c.X)
}

// Behavior is one operator's tick logic.
type Behavior func(ctx Context)
