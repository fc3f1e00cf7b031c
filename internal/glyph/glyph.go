// Package glyph implements the byte-level conventions the grid is built
// on: the base-36 value mapping and the case-bit tricks used everywhere
// an operator reads or writes a cell.
package glyph

// Glyph is a single playfield cell. Canonical values are printable ASCII;
// Empty means no-op.
type Glyph byte

const (
	Empty Glyph = '.'
	Bang  Glyph = '*'
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// caseBit is the ASCII bit that distinguishes 'a'..'z' from 'A'..'Z'.
const caseBit = 0x20

// IsDigit reports whether g is one of '0'..'9'.
func IsDigit(g Glyph) bool {
	return g >= '0' && g <= '9'
}

// IsLetter reports whether g is a letter, in either case.
func IsLetter(g Glyph) bool {
	lo := g | caseBit
	return lo >= 'a' && lo <= 'z'
}

// IsUpper reports whether g is an uppercase letter.
func IsUpper(g Glyph) bool {
	return IsLetter(g) && g&caseBit == 0
}

// IsLower reports whether g is a lowercase letter.
func IsLower(g Glyph) bool {
	return IsLetter(g) && g&caseBit != 0
}

// Lowered returns g with its case bit set, if it is a letter; otherwise g
// unchanged. Never inline the `g | 0x20` trick at call sites — use this.
func Lowered(g Glyph) Glyph {
	if IsLetter(g) {
		return g | caseBit
	}
	return g
}

// Uppered returns g with its case bit cleared, if it is a letter.
func Uppered(g Glyph) Glyph {
	if IsLetter(g) {
		return g &^ caseBit
	}
	return g
}

// WithCaseOf returns g re-cased to match caser: uppercase if caser is an
// uppercase letter, lowercase otherwise (the default). Non-letters are
// returned unchanged, since they have no case to carry.
func WithCaseOf(g, caser Glyph) Glyph {
	if !IsLetter(g) {
		return g
	}
	if IsUpper(caser) {
		return Uppered(g)
	}
	return Lowered(g)
}

// Value returns the base-36 numeric value of g in 0..35. Non-alphanumeric
// glyphs map to 0.
func Value(g Glyph) int {
	switch {
	case IsDigit(g):
		return int(g - '0')
	case IsLetter(g):
		return int(Lowered(g)-'a') + 10
	default:
		return 0
	}
}

// Of maps a base-36 value back to its canonical (lowercase) glyph. Values
// outside 0..35 are wrapped modulo 36.
func Of(v int) Glyph {
	v %= 36
	if v < 0 {
		v += 36
	}
	return Glyph(base36Alphabet[v])
}
