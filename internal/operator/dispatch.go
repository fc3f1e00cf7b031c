package operator

import "orca-core/internal/glyph"

// alphaBehaviors holds the 26 letter operators, keyed by their lowercase
// form. Dispatch folds case before lookup; the lowercase gate itself is
// applied by the caller.
var alphaBehaviors = map[glyph.Glyph]Behavior{
	'n': Move, 'e': Move, 's': Move, 'w': Move,
	'a': Add, 'b': Subtract, 'm': Multiply,
	'c': Clock, 'd': Delay, 'f': If, 'g': Generator, 'h': Halt,
	'i': Increment, 'j': Jump, 'k': Konkat, 'l': Lesser, 'o': Offset,
	'p': Push, 'q': Query, 'r': Random, 't': Track, 'u': Uclid,
	'v': Variable, 'x': Teleport, 'y': Yump, 'z': Lerp,
}

// punctBehaviors holds the non-letter operators, keyed by their literal
// glyph since they carry no case.
var punctBehaviors = map[glyph.Glyph]Behavior{
	'*': Bang,
	'#': Comment,
	':': NotePoly,
	'%': NoteMono,
	'?': PitchBend,
	'!': Cc,
	'=': Chord,
	'$': Scale,
	';': Bouncer,
	'&': Arp,
}

// alwaysRun holds the punctuation operators that are dispatched every
// tick regardless of a neighboring bang: '*' and '#' always act; '$' and
// ';' are the two explicitly "always-on" operators in spec §4.3; '!'
// needs to keep stepping its ramp after the triggering bang has passed
// (see the comment on Cc).
var alwaysRun = map[glyph.Glyph]bool{
	'*': true,
	'#': true,
	'$': true,
	';': true,
	'!': true,
}

// Dispatch runs the behavior for the glyph at (y, x), honoring the
// bang-gate rules: lowercase letters need a neighboring bang (uppercase
// letters, R included, run every tick), as does every punctuation operator
// not in alwaysRun.
// Callers are expected to have already checked Dispatchable (LOCK/SLEEP).
func Dispatch(ctx Context) {
	g := ctx.Self()
	if g == glyph.Empty {
		return
	}

	if glyph.IsLetter(g) {
		fn, ok := alphaBehaviors[glyph.Lowered(g)]
		if !ok {
			return
		}
		if glyph.IsLower(g) && !ctx.Cursor().Bang() {
			return
		}
		fn(ctx)
		return
	}

	fn, ok := punctBehaviors[g]
	if !ok {
		return
	}
	if !alwaysRun[g] && !ctx.Cursor().Bang() {
		return
	}
	fn(ctx)
}
