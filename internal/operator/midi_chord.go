package operator

import (
	"orca-core/internal/glyph"
	"orca-core/internal/midi"
	"orca-core/internal/miditab"
)

// Chord implements '=': emits one Note per chord interval, raising the
// octave of any voice that would not land strictly above the previous one.
func Chord(ctx Context) {
	c := ctx.Cursor()
	channel := clampInt(glyph.Value(c.Peek(0, 1)), 0, 15)
	octave := clampInt(glyph.Value(c.Peek(0, 2)), 0, 9)
	semitone, ok := miditab.NoteSemitone(c.Peek(0, 3))
	if !ok {
		return
	}
	pattern := miditab.ChordFor(glyph.Value(c.Peek(0, 4)))
	if pattern == nil {
		return
	}
	velocityGlyph := c.Peek(0, 5)
	velocity := 127
	if velocityGlyph != glyph.Empty {
		velocity = clampInt(glyph.Value(velocityGlyph)*127/35, 0, 127)
	}
	duration := glyph.Value(c.Peek(0, 6)) & 0x7f

	prev := -1
	for _, interval := range pattern {
		note := octave*12 + semitone + interval
		for note <= prev {
			note += 12
		}
		prev = note
		if note > 127 {
			continue
		}
		noteOctave, noteSemitone := note/12, note%12
		if noteOctave > 9 {
			continue
		}
		ctx.Events.Emit(midi.Note{
			Channel:  channel,
			Octave:   noteOctave,
			Note:     noteSemitone,
			Velocity: velocity,
			Duration: duration,
			Mono:     false,
		})
	}
}
