package operator

import (
	"orca-core/internal/glyph"
	"orca-core/internal/grid"
)

// If implements 'F': bang at S iff W glyph equals E glyph.
func If(ctx Context) {
	c := ctx.Cursor()
	out := glyph.Empty
	if c.Peek(0, -1) == c.Peek(0, 1) {
		out = glyph.Bang
	}
	c.PokeStunned(1, 0, out)
}

// Halt implements 'H': suppresses the cell below this tick.
func Halt(ctx Context) {
	ctx.Cursor().Port(1, 0, grid.Param)
}

// Increment implements 'I': reads and rewrites the S cell by rate mod max.
func Increment(ctx Context) {
	c := ctx.Cursor()
	rateGlyph := c.Peek(0, -1)
	rate := glyph.Value(rateGlyph)
	if rateGlyph == glyph.Empty || rateGlyph == glyph.Bang {
		rate = 1
	}
	e := c.Peek(0, 1)
	max := glyph.Value(e)
	if max == 0 {
		max = 36
	}
	cur := glyph.Value(c.Peek(1, 0))
	out := glyph.WithCaseOf(glyph.Of((cur+rate)%max), e)
	c.PokeStunned(1, 0, out)
}

// Lesser implements 'L': outputs min(v(W), v(E)), or '.' if either input
// is empty.
func Lesser(ctx Context) {
	c := ctx.Cursor()
	w := c.Peek(0, -1)
	e := c.Peek(0, 1)
	out := glyph.Empty
	if w != glyph.Empty && e != glyph.Empty {
		out = glyph.WithCaseOf(glyph.Of(minInt(glyph.Value(w), glyph.Value(e))), e)
	}
	c.PokeStunned(1, 0, out)
}

// Variable implements 'V': writes slot[v(W)] = E when W is set, otherwise
// reads slot[v(E)] to S when E is set.
func Variable(ctx Context) {
	c := ctx.Cursor()
	w := c.Peek(0, -1)
	e := c.Peek(0, 1)
	if w != glyph.Empty {
		ctx.Vars.Set(glyph.Value(w), e)
		return
	}
	if e != glyph.Empty {
		c.PokeStunned(1, 0, ctx.Vars.Get(glyph.Value(e)))
	}
}

// Lerp implements 'Z': steps the S cell's value toward target E by up to
// rate per tick.
func Lerp(ctx Context) {
	c := ctx.Cursor()
	rateGlyph := c.Peek(0, -1)
	rate := glyph.Value(rateGlyph)
	if rateGlyph == glyph.Empty || rateGlyph == glyph.Bang {
		rate = 1
	}
	e := c.Peek(0, 1)
	target := glyph.Value(e)
	cur := glyph.Value(c.Peek(1, 0))
	diff := target - cur
	step := minInt(rate, absInt(diff))
	switch {
	case diff > 0:
	case diff < 0:
		step = -step
	default:
		step = 0
	}
	out := glyph.WithCaseOf(glyph.Of(cur+step), e)
	c.PokeStunned(1, 0, out)
}
