package operator

import "orca-core/internal/glyph"

// Clock implements 'C': outputs (tick/rate) mod modulo, east's case.
func Clock(ctx Context) {
	c := ctx.Cursor()
	rate := glyph.Value(c.Peek(0, -1))
	if rate == 0 {
		rate = 1
	}
	e := c.Peek(0, 1)
	mod := glyph.Value(e)
	if mod == 0 {
		mod = 8
	}
	out := glyph.WithCaseOf(glyph.Of((ctx.Tick/rate)%mod), e)
	c.PokeStunned(1, 0, out)
}

// Delay implements 'D': outputs a bang every rate*modulo ticks.
func Delay(ctx Context) {
	c := ctx.Cursor()
	rate := glyph.Value(c.Peek(0, -1))
	if rate == 0 {
		rate = 1
	}
	mod := glyph.Value(c.Peek(0, 1))
	if mod == 0 {
		mod = 8
	}
	out := glyph.Glyph(glyph.Empty)
	if ctx.Tick%(rate*mod) == 0 {
		out = glyph.Bang
	}
	c.PokeStunned(1, 0, out)
}
