package operator

import (
	"orca-core/internal/glyph"
	"orca-core/internal/grid"
)

// Teleport implements 'X': copies count+1 cells read east of itself to an
// absolute (y, x) destination elsewhere in the grid. Unlike every other
// operator, y and x here name absolute grid coordinates, not offsets from
// the operator — that is the point of a teleport.
func Teleport(ctx Context) {
	c := ctx.Cursor()
	count := glyph.Value(c.Peek(0, -3))
	if count == 0 {
		return
	}
	y := glyph.Value(c.Peek(0, -2))
	x := glyph.Value(c.Peek(0, -1))

	switch {
	case x == 0 && y < 1:
		return
	case x == 1 && count != 1:
		return
	case y == 0 && x <= count:
		return
	}

	for i := 0; i <= count; i++ {
		v := c.Peek(0, 1+i)
		ctx.Grid.SetGlyph(y, x+i, v)
		ctx.Grid.OrMark(y, x+i, grid.Sleep)
	}
}
