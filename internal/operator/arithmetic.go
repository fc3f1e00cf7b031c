package operator

import "orca-core/internal/glyph"

// Add implements 'A': output = v(W) + v(E) mod 36, east's case.
func Add(ctx Context) { arith(ctx, func(w, e int) int { return w + e }) }

// Subtract implements 'B': output = |v(E) - v(W)| mod 36, east's case.
func Subtract(ctx Context) { arith(ctx, func(w, e int) int { return absInt(e - w) }) }

// Multiply implements 'M': output = v(W) * v(E) mod 36, east's case.
func Multiply(ctx Context) { arith(ctx, func(w, e int) int { return w * e }) }

func arith(ctx Context, op func(w, e int) int) {
	c := ctx.Cursor()
	w := c.Peek(0, -1)
	e := c.Peek(0, 1)
	result := op(glyph.Value(w), glyph.Value(e))
	out := glyph.WithCaseOf(glyph.Of(result), e)
	// Raw poke, not stunned: arithmetic relies on row-major scan order to
	// avoid re-evaluating its own output this tick.
	c.Poke(1, 0, out)
}
