package operator

import "orca-core/internal/glyph"

// Random implements 'R': outputs a deterministic pseudo-random value in
// [min(a,b), max(a,b)), or a itself when a == b.
func Random(ctx Context) {
	c := ctx.Cursor()
	a := glyph.Value(c.Peek(0, -1))
	e := c.Peek(0, 1)
	b := glyph.Value(e)
	if b == 0 {
		b = 36
	}
	var out glyph.Glyph
	if a == b {
		out = glyph.Of(a)
	} else {
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		out = glyph.Of(hashInRange(ctx.Seed, ctx.Grid.Width, ctx.Y, ctx.X, ctx.Tick, lo, hi))
	}
	c.PokeStunned(1, 0, glyph.WithCaseOf(out, e))
}
