// Package miditab holds the static lookup tables the MIDI operators
// share: the glyph-to-semitone mapping for note letters, and the unified
// 62-entry scale/chord table described in spec §4.6/§6.
package miditab

import "orca-core/internal/glyph"

// naturalSemitone maps the seven natural note letters to semitones from C.
var naturalSemitone = map[byte]int{
	'A': 9, 'B': 11, 'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7,
}

// NoteSemitone maps a note-letter glyph to a semitone in 0..11. Letters
// beyond G cycle through the same seven natural degrees (A and B play the
// role H and I do, and so on); a lowercase letter sharpens the result by
// one semitone. ok is false if g is not a letter.
func NoteSemitone(g glyph.Glyph) (semitone int, ok bool) {
	if !glyph.IsLetter(g) {
		return 0, false
	}
	upper := byte(glyph.Uppered(g))
	offset := int(upper-'A') % 7
	natural := byte('A' + offset)
	sharp := 0
	if glyph.IsLower(g) {
		sharp = 1
	}
	return (naturalSemitone[natural] + sharp) % 12, true
}

// noteLetters maps a semitone 0..11 back to its natural-or-sharp spelling,
// the inverse of NoteSemitone: naturals are uppercase, sharps lowercase.
var noteLetters = [12]glyph.Glyph{
	'C', 'c', 'D', 'd', 'E', 'F', 'f', 'G', 'g', 'A', 'a', 'B',
}

// SemitoneNote maps a semitone in 0..11 back to a note-letter glyph, for
// operators (like '$') that write a pitch back into the grid rather than
// emitting it as a MIDI event. Out-of-range semitones wrap modulo 12.
func SemitoneNote(semitone int) glyph.Glyph {
	semitone %= 12
	if semitone < 0 {
		semitone += 12
	}
	return noteLetters[semitone]
}

// enrichedChords backs the '=' operator's indices 0..9: the first ten
// root-position chords below, padded with a repeated root or third an
// octave up for four- or five-voice texture. Not literally enumerated in
// spec §6 (only described by rule) — derived once here and documented in
// DESIGN.md.
var enrichedChords = [10][]int{
	{0, 4, 7, 12},      // major
	{0, 3, 7, 12},      // minor
	{0, 5, 7, 12},      // sus4
	{0, 2, 7, 12},      // sus2
	{0, 4, 7, 11, 16},  // maj7
	{0, 3, 7, 10, 15},  // min7
	{0, 4, 7, 10, 16},  // dom7
	{0, 4, 7, 9, 16},   // maj6
	{0, 3, 7, 9, 15},   // min6
	{0, 3, 6, 12},      // dim
}

// rootChords are the 26 root-position chords for indices a..z (10..35),
// reproduced verbatim from spec §6.
var rootChords = [26][]int{
	{0, 4, 7},             // major
	{0, 3, 7},             // minor
	{0, 5, 7},             // sus4
	{0, 2, 7},             // sus2
	{0, 4, 7, 11},         // maj7
	{0, 3, 7, 10},         // min7
	{0, 4, 7, 10},         // dom7
	{0, 3, 7, 11},         // minMaj7
	{0, 3, 7, 9},          // min6
	{0, 4, 7, 9},          // maj6
	{0, 4, 7, 11, 14},     // maj9
	{0, 3, 7, 10, 14},     // min9
	{0, 4, 7, 14},         // maj-add9
	{0, 3, 7, 14},         // min-add9
	{0, 3, 6},             // dim
	{0, 3, 6, 10},         // half-dim7
	{0, 3, 6, 9},          // dim7
	{0, 4, 8},             // aug
	{0, 4, 8, 10},         // aug7
	{0, 4, 7, 10, 14},     // dom9
	{0, 4, 7, 10, 13},     // dom7b9
	{0, 4, 7, 10, 15},     // dom7#9
	{0, 4, 7, 9, 14},      // maj6/9
	{0, 3, 7, 9, 14},      // min6/9
	{0, 3, 7, 10, 17},     // min11
	{0, 3, 6, 10},         // min7b5
}

// essentialScales back the '$' operator's indices 0..9, reproduced
// verbatim from spec §6.
var essentialScales = [10][]int{
	{0, 2, 4, 5, 7, 9, 11}, // major
	{0, 2, 3, 5, 7, 8, 10}, // minor
	{0, 2, 3, 5, 7, 9, 10}, // dorian
	{0, 2, 4, 6, 7, 9, 11}, // lydian
	{0, 2, 4, 5, 7, 9, 10}, // mixolydian
	{0, 2, 4, 7, 9},        // pentatonic
	{0, 2, 3, 7, 8},        // hirajoshi
	{0, 1, 5, 6, 10},       // iwato
	{0, 4, 7, 11},          // tetratonic
	{0, 7},                 // fifths
}

// invert rotates a root-position chord into its first inversion: the root
// moves to the top (raised an octave), and the whole shape is shifted down
// so the new lowest voice lands on 0.
func invert(offsets []int) []int {
	out := make([]int, len(offsets))
	copy(out, offsets[1:])
	out[len(out)-1] = offsets[0] + 12
	base := out[0]
	for i := range out {
		out[i] -= base
	}
	return out
}

var inversionChords = func() [26][]int {
	var inv [26][]int
	for i, c := range rootChords {
		inv[i] = invert(c)
	}
	return inv
}()

// ChordFor returns the semitone offsets for the '=' (midichord) operator's
// table index (0..61), or nil if index is out of range.
func ChordFor(index int) []int {
	switch {
	case index < 0 || index > 61:
		return nil
	case index < 10:
		return enrichedChords[index]
	case index < 36:
		return rootChords[index-10]
	default:
		return inversionChords[index-36]
	}
}

// ScaleFor returns the semitone offsets for the '$' (scale) operator's
// table index (0..61), or nil if index is out of range. Indices 10..61
// share the same root-position/inversion chord tables as ChordFor; only
// the 0..9 partition differs (essential scales instead of enriched chords).
func ScaleFor(index int) []int {
	switch {
	case index < 0 || index > 61:
		return nil
	case index < 10:
		return essentialScales[index]
	case index < 36:
		return rootChords[index-10]
	default:
		return inversionChords[index-36]
	}
}
