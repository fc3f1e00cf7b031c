package operator

// deterministicHash reproduces the integer hash spec'd for R and the
// arpeggiator's random pattern, so both draw from the same reproducible
// stream given the same (seed, y, x, width, tick). A Thomas Wang style
// integer mix, computed in 32-bit space so it behaves the same on every
// platform.
func deterministicHash(seed, width, y, x, tick int) uint32 {
	key := uint32(seed+y*width+x) ^ uint32(tick<<16)
	key = (key ^ 61) ^ (key >> 16)
	key = key + (key << 3)
	key = key ^ (key >> 4)
	key = key * 0x27d4eb2d
	key = key ^ (key >> 15)
	return key
}

// hashInRange maps the hash into [min, max). Callers are responsible for
// ensuring max > min.
func hashInRange(seed, width, y, x, tick, min, max int) int {
	key := deterministicHash(seed, width, y, x, tick)
	span := uint32(max - min)
	return min + int(key%span)
}
