package operator

import "orca-core/internal/glyph"

// Output writes throughout this package default to PokeStunned: a written
// glyph must not itself be picked up later in the same row-major pass.
// Arithmetic (A, B, M) is the one documented exception, relying on scan
// direction instead.

var moveDelta = map[glyph.Glyph][2]int{
	'n': {-1, 0},
	'e': {0, 1},
	's': {1, 0},
	'w': {0, -1},
}

// Move implements the N/E/S/W movement operators: it relocates its own
// glyph one cell in the indicated direction, or turns into a bang if the
// destination is occupied.
func Move(ctx Context) {
	c := ctx.Cursor()
	self := ctx.Self()
	delta := moveDelta[glyph.Lowered(self)]
	dy, dx := delta[0], delta[1]

	if !ctx.Grid.InBounds(ctx.Y+dy, ctx.X+dx) {
		c.Poke(0, 0, glyph.Bang)
		return
	}
	if c.Peek(dy, dx) != glyph.Empty {
		c.Poke(0, 0, glyph.Bang)
		return
	}
	c.PokeStunned(dy, dx, self)
	c.Poke(0, 0, glyph.Empty)
}
