package operator

import "orca-core/internal/glyph"

// Arp implements '&': walks a scale degree sequence on each bang,
// according to one of fourteen named patterns, across a range of 1..4
// octaves (7 degrees each).
func Arp(ctx Context) {
	c := ctx.Cursor()
	patternGlyph := c.Peek(0, -1)
	rangeGlyph := c.Peek(0, 1)

	patternIdx := glyph.Value(patternGlyph)
	rangeVal := clampInt(glyph.Value(rangeGlyph), 1, 4)

	arp := ctx.State.Arp(ctx.Coord())
	changed := arp.Init && (patternGlyph != arp.LastPattern || rangeGlyph != arp.LastRange)
	if changed || !arp.Init {
		arp.Step = 0
	}
	arp.LastPattern, arp.LastRange, arp.Init = patternGlyph, rangeGlyph, true

	total := 7 * rangeVal
	degree := arpeggiate(patternIdx, arp.Step, total, ctx.Seed)
	c.PokeStunned(1, 0, glyph.Of(degree))
	arp.Step++
}
