package operator

import (
	"orca-core/internal/glyph"
	"orca-core/internal/midi"
	"orca-core/internal/miditab"
)

func noteBehavior(mono bool) Behavior {
	return func(ctx Context) {
		c := ctx.Cursor()
		channel := clampInt(glyph.Value(c.Peek(0, 1)), 0, 15)
		octaveGlyph := c.Peek(0, 2)
		if octaveGlyph == glyph.Empty {
			return
		}
		semitone, ok := miditab.NoteSemitone(c.Peek(0, 3))
		if !ok {
			return
		}
		velocityGlyph := c.Peek(0, 4)
		var velocity int
		switch {
		case velocityGlyph == glyph.Empty:
			velocity = 127
		case velocityGlyph == '0':
			return
		default:
			velocity = clampInt(glyph.Value(velocityGlyph)*8-1, 0, 127)
		}
		duration := glyph.Value(c.Peek(0, 5)) & 0x7f
		octave := clampInt(glyph.Value(octaveGlyph), 0, 9)

		ctx.Events.Emit(midi.Note{
			Channel:  channel,
			Octave:   octave,
			Note:     semitone,
			Velocity: velocity,
			Duration: duration,
			Mono:     mono,
		})
	}
}

// NotePoly implements ':', the polyphonic MIDI note operator.
var NotePoly = noteBehavior(false)

// NoteMono implements '%', the monophonic MIDI note operator.
var NoteMono = noteBehavior(true)

// PitchBend implements '?'.
func PitchBend(ctx Context) {
	c := ctx.Cursor()
	channelGlyph := c.Peek(0, 1)
	if channelGlyph == glyph.Empty {
		return
	}
	channel := clampInt(glyph.Value(channelGlyph), 0, 15)
	msb := glyph.Value(c.Peek(0, 2)) * 127 / 35
	lsb := glyph.Value(c.Peek(0, 3)) * 127 / 35
	ctx.Events.Emit(midi.PitchBend{Channel: channel, MSB: msb, LSB: lsb})
}
