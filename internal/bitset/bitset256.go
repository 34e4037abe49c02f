// Package bitset implements a fixed 256-bit set, used to represent the POP
// branch representation's child bitmap: bit c set means the trie has a
// child for byte value c.
//
// This is a hand-rolled, allocation-free rewrite scoped to exactly 256
// bits and specialised for the trie's hot path (membership test,
// ordinal/rank, and ascending enumeration); see internal/verify for a
// cross-check against the general-purpose github.com/bits-and-blooms/bitset
// library.
package bitset

import "math/bits"

// BitSet256 is a set of the 256 possible byte values, stored as four
// 64-bit words in ascending order (word 0 covers bytes 0-63, ..., word 3
// covers bytes 192-255).
type BitSet256 [4]uint64

// Test reports whether c is a member of the set.
func (b *BitSet256) Test(c byte) bool {
	return b[c>>6]&(uint64(1)<<(c&63)) != 0
}

// Set adds c to the set.
func (b *BitSet256) Set(c byte) {
	b[c>>6] |= uint64(1) << (c & 63)
}

// Clear removes c from the set.
func (b *BitSet256) Clear(c byte) {
	b[c>>6] &^= uint64(1) << (c & 63)
}

// Rank0 returns the number of members strictly less than c. This is both
// c's ordinal position among the members (when c is itself a member) and
// its insertion position (when it is not).
func (b *BitSet256) Rank0(c byte) int {
	w := int(c >> 6)
	bit := c & 63
	n := bits.OnesCount64(b[w] & (uint64(1)<<bit - 1))
	for i := 0; i < w; i++ {
		n += bits.OnesCount64(b[i])
	}
	return n
}

// Len returns the total number of members.
func (b *BitSet256) Len() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1]) + bits.OnesCount64(b[2]) + bits.OnesCount64(b[3])
}

// IsEmpty reports whether the set has no members.
func (b *BitSet256) IsEmpty() bool {
	return b[0] == 0 && b[1] == 0 && b[2] == 0 && b[3] == 0
}

// FirstSet returns the smallest member and true, or 0 and false if empty.
func (b *BitSet256) FirstSet() (byte, bool) {
	for w := 0; w < 4; w++ {
		if b[w] != 0 {
			return byte(w*64 + bits.TrailingZeros64(b[w])), true
		}
	}
	return 0, false
}

// LastSet returns the largest member and true, or 0 and false if empty.
func (b *BitSet256) LastSet() (byte, bool) {
	for w := 3; w >= 0; w-- {
		if b[w] != 0 {
			return byte(w*64 + 63 - bits.LeadingZeros64(b[w])), true
		}
	}
	return 0, false
}

// Chars returns every member in ascending order, clearing the lowest set
// bit on each step so the loop body never inspects a bit twice.
func (b *BitSet256) Chars() []byte {
	out := make([]byte, 0, b.Len())
	for w := 0; w < 4; w++ {
		x := b[w]
		for x != 0 {
			c := byte(w*64 + bits.TrailingZeros64(x))
			out = append(out, c)
			x &= x - 1
		}
	}
	return out
}
