package operator

import "orca-core/internal/glyph"

// helpEntry is one operator's help text, keyed by its canonical uppercase
// (or, for punctuation, literal) glyph.
type helpEntry struct {
	name    string
	summary string
	example string
}

// helpTable supplements the dispatch table with the prose the original
// bOrca operator reference shipped alongside its opcodes. It is not
// consulted during evaluation, only by the describe command and any
// status line that wants to show it.
var helpTable = map[glyph.Glyph]helpEntry{
	'N': {"north", "Moves one cell north, or becomes a bang if blocked; lowercase moves only when a bang is adjacent.", "N -> moves operator north"},
	'E': {"east", "Moves one cell east, or becomes a bang if blocked; lowercase moves only when a bang is adjacent.", "E -> moves operator east"},
	'S': {"south", "Moves one cell south, or becomes a bang if blocked; lowercase moves only when a bang is adjacent.", "S -> moves operator south"},
	'W': {"west", "Moves one cell west, or becomes a bang if blocked; lowercase moves only when a bang is adjacent.", "W -> moves operator west"},
	'A': {"add", "Outputs the sum of its west and east inputs.", "1A3 -> writes 4 south (1+3)"},
	'B': {"subtract", "Outputs the absolute difference of its west and east inputs.", "5B3 -> writes 2 south (|3-5|)"},
	'M': {"multiply", "Outputs the product of its west and east inputs.", "2M4 -> writes 8 south (2*4)"},
	'C': {"clock", "Outputs the tick count divided by rate, modulo the right input.", "1C8 -> writes (tick/1) % 8 south"},
	'D': {"delay", "Bangs when tick % (rate*modulo) == 0.", "1D2 -> bangs south every 2 ticks"},
	'F': {"if", "Bangs if its west and east inputs are equal.", "3F3 -> writes '*' south (3==3)"},
	'L': {"lesser", "Outputs the smaller of its west and east inputs.", "3L9 -> writes 3 south (min(3,9))"},
	'I': {"increment", "Increments the cell south of it by rate, wrapping at the east input's max.", "1Iz -> adds 1 to the cell south, wrapping to 0 at z"},
	'O': {"offset", "Reads a value at a (y, x) offset and writes it south.", "11O -> writes the glyph at offset (1,2) south"},
	'P': {"push", "Writes its east input into the row below, at slot key mod length.", "13Pv -> writes 'v' into slot 1 of the 3 cells below"},
	'Q': {"query", "Reads length/y/x from the west and copies that many values from the (y, x+1) offset into the row below.", "210Q -> copies the cells at (1,1),(1,2) to (1,-1),(1,0)"},
	'T': {"track", "Reads key/length from the west and writes the keyed value of the array to its east into the cell south of it.", "12Txy -> writes 'y' south (key 1 of 2)"},
	'X': {"teleport", "Copies count+1 glyphs to an absolute (y, x) destination.", "222Xpqr -> copies 'pqr' to (2,2)"},
	'V': {"variable", "Stores the east input under the west-named slot, or reads it back.", "aVb -> stores 'b' in slot 'a'; .Va -> writes slot 'a' south"},
	'K': {"konkat", "Reads a run of variable slots named to the east and writes their values.", "2Kab -> writes the values of vars 'a' and 'b' one row down"},
	'G': {"generator", "Writes a run of glyphs at a (y, x, length) offset.", "123Gabc -> writes 'abc' at offset (3,1)"},
	'U': {"uclid", "Bangs on a Euclidean rhythm of steps-in-max.", "3U8 -> 3-in-8 Euclidean rhythm, banging south"},
	'R': {"random", "Outputs a pseudo-random value in [west, east) south; uppercase every tick, lowercase on a bang.", "0Rz -> random value in 0..y"},
	'H': {"halt", "Locks the cell south of it so it cannot dispatch this tick.", "H\n* -> halts the '*' below"},
	'J': {"jump", "Reads the value north of it and writes it south.", "a\nJ\na -> jumps 'a' downward"},
	'Y': {"yump", "Reads the value west of it and writes it east.", "aY.a -> yumps 'a' rightward"},
	'Z': {"lerp", "Steps the cell south of it toward a target by a fixed rate each tick.", "2Z5 -> steps the cell south toward 5 by 2 (a, 8, 6, 5)"},
	':': {"midi", "Emits a MIDI note from channel/octave/note/velocity/duration ports to the east.", ":03C88 -> note C3, channel 0, velocity 63, duration 8"},
	'!': {"cc", "Emits a MIDI control-change ramp that keeps advancing after the triggering bang.", "!04A8f -> CC 74 on channel 0, ramping to 29 over 30 ticks"},
	'?': {"pb", "Emits a MIDI pitch-bend message from channel/MSB/LSB ports.", "?088 -> pitch bend channel 0, MSB 29, LSB 29"},
	'%': {"mono", "Same as ':' but flags the note event monophonic.", "%03C88 -> mono note C3"},
	'$': {"scale", "Outputs a note glyph from the unified scale/chord table given root/type/degree.", "$3C02 -> C major scale, degree 2 -> E"},
	'=': {"midichord", "Emits a full MIDI chord using the unified scale/chord table.", "=13Ca88 -> C major chord, channel 1, octave 3"},
	';': {"bouncer", "Outputs a waveform-shaped value between a start and end, advancing each tick.", "3a;20 -> triangle wave from 3 to 'a', rate 2"},
	'&': {"arpeggiator", "Outputs a degree sequence for '$' to consume, stepping on every bang.", "2&1 -> up-down pattern over range 1"},
	'*': {"bang", "Triggers every adjacent operator that requires a bang.", "* -> bangs adjacent lowercase operators"},
	'#': {"comment", "Locks the rest of the line so nothing to its east dispatches.", "abc#def -> only 'abc' executes"},
}

// Describe returns the help text for g, or false if g has no entry. The
// lookup folds letters to uppercase first, since help is registered once
// per letter operator regardless of the bang-gate case.
func Describe(g glyph.Glyph) (summary, example string, ok bool) {
	key := g
	if glyph.IsLetter(g) {
		key = glyph.Uppered(g)
	}
	e, ok := helpTable[key]
	if !ok {
		return "", "", false
	}
	return e.summary, e.example, true
}

// Name returns just the operator's short name (e.g. "add" for 'A'),
// matching the original reference's naming.
func Name(g glyph.Glyph) (string, bool) {
	key := g
	if glyph.IsLetter(g) {
		key = glyph.Uppered(g)
	}
	e, ok := helpTable[key]
	return e.name, ok
}
