package operator

const jumpScanLimit = 256

// Jump implements 'J': propagates the glyph above straight down through a
// run of identical jump operators.
func Jump(ctx Context) {
	c := ctx.Cursor()
	self := ctx.Self()
	if c.Peek(-1, 0) == self {
		return
	}
	north := c.Peek(-1, 0)
	for i := 1; i <= jumpScanLimit; i++ {
		if c.Peek(i, 0) == self {
			continue
		}
		for k := 1; k < i; k++ {
			c.Stun(k, 0)
		}
		c.PokeStunned(i, 0, north)
		return
	}
}

// Yump implements 'Y': the same as Jump, but scanning east instead of
// south.
func Yump(ctx Context) {
	c := ctx.Cursor()
	self := ctx.Self()
	if c.Peek(0, -1) == self {
		return
	}
	west := c.Peek(0, -1)
	for i := 1; i <= jumpScanLimit; i++ {
		if c.Peek(0, i) == self {
			continue
		}
		for k := 1; k < i; k++ {
			c.Stun(0, k)
		}
		c.PokeStunned(0, i, west)
		return
	}
}
