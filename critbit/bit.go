package critbit

import "math/bits"

// bitAt returns the bit of x at position i, where i=0 is the LSB.
func bitAt(x uint64, i uint8) uint8 {
	return uint8((x >> i) & 1)
}

// critBit returns the highest bit position at which a and b differ.
// ok=false indicates a==b.
func critBit(a, b uint64) (idx uint8, ok bool) {
	x := a ^ b
	if x == 0 {
		return 0, false
	}
	return uint8(bits.Len64(x) - 1), true
}

// prefixAbove clears every bit of x at or below position i.
func prefixAbove(x uint64, i uint8) uint64 {
	return x &^ lowMask(i)
}

// lowMask has every bit at or below position i set.
func lowMask(i uint8) uint64 {
	if i >= KeyBits-1 {
		return ^uint64(0)
	}
	return (uint64(1) << (i + 1)) - 1
}
