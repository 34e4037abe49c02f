// Package verify cross-checks internal/bitset.BitSet256 against the
// general-purpose github.com/bits-and-blooms/bitset library, so a property
// test can confirm the hand-rolled 256-bit set agrees with a battle-tested
// independent implementation rather than only with itself.
package verify

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	obitset "github.com/oclabs/octrie/internal/bitset"
)

// BitSet256 mirrors an internal/bitset.BitSet256's operations against a
// github.com/bits-and-blooms/bitset.BitSet built from the same sequence of
// Set/Clear calls, returning an error describing the first disagreement
// found, if any.
type BitSet256 struct {
	fast obitset.BitSet256
	ref  *bitset.BitSet
}

// NewBitSet256 returns an empty cross-checking bit set.
func NewBitSet256() *BitSet256 {
	return &BitSet256{ref: bitset.New(256)}
}

// Set adds c to both underlying sets.
func (b *BitSet256) Set(c byte) {
	b.fast.Set(c)
	b.ref.Set(uint(c))
}

// Clear removes c from both underlying sets.
func (b *BitSet256) Clear(c byte) {
	b.fast.Clear(c)
	b.ref.Clear(uint(c))
}

// Check compares every byte value's membership and the two sets' overall
// cardinality, returning an error naming the first mismatch found.
func (b *BitSet256) Check() error {
	if got, want := b.fast.Len(), int(b.ref.Count()); got != want {
		return fmt.Errorf("verify: cardinality mismatch: fast=%d ref=%d", got, want)
	}
	for c := 0; c < 256; c++ {
		got, want := b.fast.Test(byte(c)), b.ref.Test(uint(c))
		if got != want {
			return fmt.Errorf("verify: membership mismatch at byte %d: fast=%v ref=%v", c, got, want)
		}
	}
	return nil
}
