package operator

import "orca-core/internal/glyph"

// Bang implements '*': it is a one-tick pulse. The presence of a '*' is
// what the bang predicate checks for; by the time the next tick scans
// this cell, it has already cleared itself.
func Bang(ctx Context) {
	ctx.Cursor().Poke(0, 0, glyph.Empty)
}

// Comment implements '#': locks every cell to the east on the same row,
// up to the next '#' or 255 columns, whichever comes first.
func Comment(ctx Context) {
	c := ctx.Cursor()
	for i := 1; i <= 255; i++ {
		if c.Peek(0, i) == '#' {
			return
		}
		c.LockAt(0, i)
	}
}
