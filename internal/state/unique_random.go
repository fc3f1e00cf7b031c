package state

import (
	"math/rand"
	"time"

	"orca-core/internal/glyph"
)

// UniqueRandom is a process-wide shuffle-bag: repeated calls with the same
// (min, max) range walk a shuffled permutation of that range without
// repeats, reshuffling once the bag is exhausted or the range changes.
// Seeded from the host clock, not from a tick counter, so two runs over
// the same grid do not reproduce the same sequence — deliberately the one
// source of non-determinism in this package. See the decision on why
// nothing in the dispatch table currently draws from it.
type UniqueRandom struct {
	rng     *rand.Rand
	perm    []int
	cursor  int
	lastMin int
	lastMax int
	primed  bool
}

// Shared is the process-wide shuffle-bag instance.
var Shared = NewUniqueRandom()

// NewUniqueRandom returns a ready-to-use shuffle-bag.
func NewUniqueRandom() *UniqueRandom {
	return &UniqueRandom{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Next returns the next glyph in [min, max), reshuffling the bag when it
// is first used, exhausted, or the requested range changes. max <= min
// degenerates to always returning min.
func (u *UniqueRandom) Next(min, max int) glyph.Glyph {
	if max <= min {
		return glyph.Of(min)
	}
	if !u.primed || min != u.lastMin || max != u.lastMax || u.cursor >= len(u.perm) {
		u.reshuffle(min, max)
	}
	v := min + u.perm[u.cursor]
	u.cursor++
	return glyph.Of(v)
}

func (u *UniqueRandom) reshuffle(min, max int) {
	n := max - min
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	u.rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	u.perm = perm
	u.cursor = 0
	u.lastMin, u.lastMax = min, max
	u.primed = true
}
