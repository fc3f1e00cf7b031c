package operator

import (
	"math"

	"orca-core/internal/glyph"
	"orca-core/internal/miditab"
)

// Bouncer implements ';': an always-on waveform oscillator between a start
// and end value. Output offset is not specified by name in the source
// material, so it follows the same south-output convention every other
// value-producing operator uses.
func Bouncer(ctx Context) {
	c := ctx.Cursor()
	startGlyph := c.Peek(0, -2)
	endGlyph := c.Peek(0, -1)
	rateGlyph := c.Peek(0, 1)
	shapeGlyph := c.Peek(0, 2)

	bs := ctx.State.Bouncer(ctx.Coord())
	changed := bs.Init && (rateGlyph != bs.LastRate || shapeGlyph != bs.LastShape)
	if c.Bang() || changed || !bs.Init {
		bs.Cursor = 0
	}
	bs.LastRate, bs.LastShape, bs.Init = rateGlyph, shapeGlyph, true

	rate := glyph.Value(rateGlyph)
	if rate > 0 && rateGlyph != glyph.Empty {
		bs.Cursor = (bs.Cursor + rate) % miditab.WaveLen
	}

	wave := miditab.WaveByShape(shapeGlyph)
	norm := float64(glyph.Value(wave[bs.Cursor])) / 35.0
	start, end := glyph.Value(startGlyph), glyph.Value(endGlyph)
	value := float64(start) + norm*float64(end-start)

	c.PokeStunned(1, 0, glyph.Of(int(math.Round(value))))
}
