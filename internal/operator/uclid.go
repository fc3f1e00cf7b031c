package operator

import "orca-core/internal/glyph"

// Uclid implements 'U': a Euclidean-rhythm bucket, banging at S whenever
// the running bucket total reaches max.
func Uclid(ctx Context) {
	c := ctx.Cursor()
	stepsGlyph := c.Peek(0, -1)
	steps := glyph.Value(stepsGlyph)
	if stepsGlyph == glyph.Empty || stepsGlyph == glyph.Bang {
		steps = 1
	}
	max := glyph.Value(c.Peek(0, 1))
	if max == 0 {
		max = 8
	}
	bucket := (steps*(ctx.Tick+max-1))%max + steps
	out := glyph.Empty
	if bucket >= max {
		out = glyph.Bang
	}
	c.PokeStunned(1, 0, out)
}
