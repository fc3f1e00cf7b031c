// Package vars implements the 36-slot tick-local variable array shared by
// the V and K operators. Lifetime is exactly one tick.
package vars

import "orca-core/internal/glyph"

// Slots is the tick-local variable array, addressed by base-36 value.
type Slots [36]glyph.Glyph

// New returns a Slots array initialized to Empty, as required at the start
// of every tick.
func New() Slots {
	var s Slots
	s.Reset()
	return s
}

// Reset sets every slot back to Empty.
func (s *Slots) Reset() {
	for i := range s {
		s[i] = glyph.Empty
	}
}

// Get returns the glyph stored at base-36 value v.
func (s *Slots) Get(v int) glyph.Glyph {
	return s[v%36]
}

// Set stores g at base-36 value v.
func (s *Slots) Set(v int, g glyph.Glyph) {
	s[v%36] = g
}
