package operator

import (
	"math"

	"orca-core/internal/glyph"
	"orca-core/internal/midi"
)

const ccMaxRate = 24

// Cc implements '!': an interpolated MIDI control-change ramp. A bang
// (re)triggers the ramp toward a new target; once triggered, the ramp
// keeps advancing on every subsequent tick until it reaches the target,
// independent of further bangs. This is why '!', unlike the other
// bang-only punctuation operators, is dispatched every tick rather than
// gated on a neighboring bang — the gate is checked here, internally,
// only to decide whether to retrigger.
func Cc(ctx Context) {
	c := ctx.Cursor()
	cc := ctx.State.CC(ctx.Coord())

	if c.Bang() {
		channel := clampInt(glyph.Value(c.Peek(0, 1)), 0, 15)
		high := glyph.Value(c.Peek(0, 2))
		low := glyph.Value(c.Peek(0, 3))
		control := clampInt((high<<4)|low, 0, 127)
		target := float64(glyph.Value(c.Peek(0, 4))) * 127.0 / 35.0
		rate := clampInt(glyph.Value(c.Peek(0, 5)), 0, ccMaxRate)
		steps := rate * 2
		if steps < 1 {
			steps = 1
		}

		step := (target - cc.Current) / float64(steps)
		if step == 0 && target != cc.Current {
			if target > cc.Current {
				step = 1
			} else {
				step = -1
			}
		}

		cc.Channel = channel
		cc.Control = control
		cc.Target = target
		cc.Step = step
		cc.StepsRemaining = steps
		cc.Active = true
	}

	if !cc.Active || cc.StepsRemaining <= 0 {
		return
	}

	cc.Current += cc.Step
	overshoot := (cc.Step > 0 && cc.Current > cc.Target) || (cc.Step < 0 && cc.Current < cc.Target)
	if overshoot {
		cc.Current = cc.Target
	}
	cc.Current = math.Max(0, math.Min(127, cc.Current))

	ctx.Events.Emit(midi.CC{Channel: cc.Channel, Control: cc.Control, Value: int(math.Round(cc.Current))})

	cc.StepsRemaining--
	if cc.StepsRemaining <= 0 {
		cc.Current = cc.Target
		cc.Active = false
	}
}
