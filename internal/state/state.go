// Package state holds the persistent, per-cell state the non-pure
// operators (midicc, bouncer, arpeggiator) carry across ticks, plus the
// process-wide unique-random shuffle. All of it is zero-initialized on
// first use and lives for the process's lifetime — nothing here is reset
// by the tick evaluator. Keyed by coordinate with a map rather than a
// fixed-size flat array, so a grid larger than any hardcoded bound still
// gets correct per-cell state instead of silent truncation.
package state

import "orca-core/internal/glyph"

// Coord addresses a cell for persistent-state lookup.
type Coord struct {
	Y, X int
}

// CCState is the '!' (midicc) operator's interpolator: it ramps Current
// toward Target over StepsRemaining ticks once triggered.
type CCState struct {
	Active         bool
	Current        float64
	Target         float64
	Step           float64
	StepsRemaining int
	Channel        int
	Control        int
}

// BouncerState is the ';' operator's waveform cursor.
type BouncerState struct {
	Cursor    int
	LastRate  glyph.Glyph
	LastShape glyph.Glyph
	// Init tracks whether LastRate/LastShape have ever been latched, so the
	// very first tick isn't mistaken for a rate/shape change.
	Init bool
}

// ArpState is the '&' operator's step cursor.
type ArpState struct {
	Step        int
	LastPattern glyph.Glyph
	LastRange   glyph.Glyph
	Init        bool
}

// Store is the per-cell persistent state keyed by coordinate. A Store is
// not safe for concurrent use — the tick evaluator is single-threaded by
// contract (spec §5), so none is needed.
type Store struct {
	cc      map[Coord]*CCState
	bouncer map[Coord]*BouncerState
	arp     map[Coord]*ArpState
}

// NewStore returns an empty persistent-state store.
func NewStore() *Store {
	return &Store{
		cc:      make(map[Coord]*CCState),
		bouncer: make(map[Coord]*BouncerState),
		arp:     make(map[Coord]*ArpState),
	}
}

// CC returns the CC interpolator state for c, creating it lazily.
func (s *Store) CC(c Coord) *CCState {
	if v, ok := s.cc[c]; ok {
		return v
	}
	v := &CCState{}
	s.cc[c] = v
	return v
}

// Bouncer returns the bouncer state for c, creating it lazily.
func (s *Store) Bouncer(c Coord) *BouncerState {
	if v, ok := s.bouncer[c]; ok {
		return v
	}
	v := &BouncerState{}
	s.bouncer[c] = v
	return v
}

// Arp returns the arpeggiator state for c, creating it lazily.
func (s *Store) Arp(c Coord) *ArpState {
	if v, ok := s.arp[c]; ok {
		return v
	}
	v := &ArpState{}
	s.arp[c] = v
	return v
}
