package operator

import (
	"orca-core/internal/glyph"
	"orca-core/internal/miditab"
)

// Scale implements '$': every tick, locks its four input ports and writes
// the note (and, if an octave was given, the octave) for a scale or chord
// degree back into the grid as glyphs rather than MIDI events.
func Scale(ctx Context) {
	c := ctx.Cursor()
	octaveGlyph := c.Peek(0, 1)
	rootGlyph := c.Peek(0, 2)
	indexGlyph := c.Peek(0, 3)
	degreeGlyph := c.Peek(0, 4)
	c.LockAt(0, 1)
	c.LockAt(0, 2)
	c.LockAt(0, 3)
	c.LockAt(0, 4)

	root, ok := miditab.NoteSemitone(rootGlyph)
	if !ok {
		return
	}
	table := miditab.ScaleFor(glyph.Value(indexGlyph))
	if len(table) == 0 {
		return
	}

	degree := glyph.Value(degreeGlyph)
	length := len(table)
	octaveInc := degree / length
	offset := table[degree%length]
	total := root + offset + 12*octaveInc

	baseOctave := 0
	octaveProvided := octaveGlyph != glyph.Empty
	if octaveProvided {
		baseOctave = glyph.Value(octaveGlyph)
	}
	finalOctave := baseOctave + total/12
	finalNote := total % 12
	if finalOctave > 9 {
		return
	}

	c.PokeStunned(1, 0, miditab.SemitoneNote(finalNote))
	if octaveProvided {
		c.PokeStunned(1, -1, glyph.Of(finalOctave))
	}
}
