package operator

// The fourteen arpeggiator pattern functions from spec §4.7. Several are
// given only in prose ("alternating pointers", "bounce within each
// third") rather than a formula; those are implementer derivations of the
// described shape, documented here rather than reverse-engineered from a
// reference implementation.

func patUp(s, n int) int { return s % n }

func patDown(s, n int) int { return n - 1 - s%n }

func patUpDown(s, n int) int {
	period := maxInt(2, 2*n-2)
	p := s % period
	if p < n {
		return p
	}
	return period - p
}

func patDownUp(s, n int) int { return n - 1 - patUpDown(s, n) }

func patUpDownPlus(s, n int) int {
	period := 2 * n
	p := s % period
	if p < n {
		return p
	}
	return period - p - 1
}

func patDownUpPlus(s, n int) int { return n - 1 - patUpDownPlus(s, n) }

func patConverge(s, n int) int {
	p := s % n
	lo, hi := 0, n-1
	for i := 0; i < p; i++ {
		if i%2 == 0 {
			lo++
		} else {
			hi--
		}
	}
	if p%2 == 0 {
		return lo
	}
	return hi
}

func patDiverge(s, n int) int {
	mid := n / 2
	idxs := make([]int, 0, n)
	idxs = append(idxs, mid)
	left, right := mid-1, mid
	for len(idxs) < n {
		if right+1 < n {
			right++
			idxs = append(idxs, right)
		}
		if len(idxs) >= n {
			break
		}
		if left >= 0 {
			idxs = append(idxs, left)
			left--
		}
	}
	return idxs[s%n]
}

func patPinkyUp(s, n int) int {
	if s%2 == 0 {
		return (s / 2) % n
	}
	return n - 1
}

func patThumbUp(s, n int) int {
	if s%2 == 0 {
		return 0
	}
	return (s/2 + 1) % n
}

func patUpDownAlt(s, n int) int {
	period := 2 * n
	p := s % period
	if p < n {
		return p
	}
	return 2*n - 1 - p
}

func patDownUpAlt(s, n int) int { return n - 1 - patUpDownAlt(s, n) }

func patRandom(s, n, seed int) int {
	return hashInRange(seed, 1, 0, 0, s, 0, n)
}

func patBounce(s, n int) int {
	third := n / 3
	if third == 0 {
		third = 1
	}
	period := maxInt(2, 2*third-2)
	p := s % period
	local := p
	if p >= third {
		local = period - p
	}
	thirdIndex := (s / period) % 3
	idx := thirdIndex*third + local
	if idx >= n {
		idx = n - 1
	}
	return idx
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// arpeggiate dispatches to one of the fourteen pattern functions by index
// (0..13), clamping out-of-range indices to 'up'.
func arpeggiate(pattern, step, total, seed int) int {
	switch pattern {
	case 0:
		return patUp(step, total)
	case 1:
		return patDown(step, total)
	case 2:
		return patUpDown(step, total)
	case 3:
		return patDownUp(step, total)
	case 4:
		return patUpDownPlus(step, total)
	case 5:
		return patDownUpPlus(step, total)
	case 6:
		return patConverge(step, total)
	case 7:
		return patDiverge(step, total)
	case 8:
		return patPinkyUp(step, total)
	case 9:
		return patThumbUp(step, total)
	case 10:
		return patUpDownAlt(step, total)
	case 11:
		return patDownUpAlt(step, total)
	case 12:
		return patRandom(step, total, seed)
	case 13:
		return patBounce(step, total)
	default:
		return patUp(step, total)
	}
}
