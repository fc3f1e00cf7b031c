package operator

import "orca-core/internal/glyph"

// Generator implements 'G': copies a run of len inputs starting east of
// itself to an explicit (out_y, out_x) destination region.
func Generator(ctx Context) {
	c := ctx.Cursor()
	outX := glyph.Value(c.Peek(0, -3))
	outY := glyph.Value(c.Peek(0, -2))
	length := glyph.Value(c.Peek(0, -1))
	for i := 0; i < length; i++ {
		v := c.Peek(0, 1+i)
		c.PokeStunned(outY+1, outX+i, v)
	}
}

// Konkat implements 'K': copies the current value of len named variables
// into the row below.
func Konkat(ctx Context) {
	c := ctx.Cursor()
	length := glyph.Value(c.Peek(0, -1))
	if length == 0 {
		length = 1
	}
	for i := 0; i < length; i++ {
		name := c.Peek(0, 1+i)
		c.PokeStunned(1, 1+i, ctx.Vars.Get(glyph.Value(name)))
	}
}

// Offset implements 'O': copies the glyph at a relative (y, x) offset read
// from its own ports. The x port stores offset-1, a visual-alignment
// quirk carried over from the operator's origin; y is stored directly.
func Offset(ctx Context) {
	c := ctx.Cursor()
	xOff := glyph.Value(c.Peek(0, -2)) + 1
	yOff := glyph.Value(c.Peek(0, -1))
	c.PokeStunned(1, 0, c.Peek(yOff, xOff))
}

// Push implements 'P': writes a value into one slot of a len-sized array
// below, selected by key mod len, locking the whole array this tick.
func Push(ctx Context) {
	c := ctx.Cursor()
	key := glyph.Value(c.Peek(0, -2))
	length := glyph.Value(c.Peek(0, -1))
	if length == 0 {
		return
	}
	for i := 0; i < length; i++ {
		c.LockAt(1, i)
	}
	c.PokeStunned(1, key%length, c.Peek(0, 1))
}

// Query implements 'Q': copies a len-sized window from an arbitrary
// (y_off, x_off) region into the row below, ending directly below itself.
func Query(ctx Context) {
	c := ctx.Cursor()
	length := glyph.Value(c.Peek(0, -3))
	yOff := glyph.Value(c.Peek(0, -2))
	xOff := glyph.Value(c.Peek(0, -1))
	for i := 0; i < length; i++ {
		v := c.Peek(yOff, xOff+1+i)
		c.PokeStunned(1, 1-length+i, v)
	}
}

// Track implements 'T': outputs one of len cells east of itself, selected
// by key mod len, locking the whole window this tick.
func Track(ctx Context) {
	c := ctx.Cursor()
	key := glyph.Value(c.Peek(0, -2))
	length := glyph.Value(c.Peek(0, -1))
	if length == 0 {
		return
	}
	for i := 1; i <= length; i++ {
		c.LockAt(0, i)
	}
	c.PokeStunned(1, 0, c.Peek(0, 1+key%length))
}
