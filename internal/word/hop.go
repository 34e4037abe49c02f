// Package word implements the packed 64-bit encodings for the trie's
// compressed-run and branch primitives: HOP (inline short run), SKIP
// (out-of-line long run), and LIST (small sorted branch). Each type is a
// value-semantic view over one uint64, with constructors from logical
// fields, field readers, and the underlying uint64 available via a plain
// conversion.
package word

// MaxHop is the largest run length a Hop word can hold inline.
const MaxHop = 6

// Hop packs 1-6 key bytes, a continuation flag byte, and a length byte into
// one 64-bit word: bytes 0-5 hold the characters (high byte first, so that
// unsigned comparison of the word matches byte-lexicographic comparison of
// the run), byte 6 holds the continuation flags, byte 7 holds the length.
type Hop uint64

// EncodeHop builds a Hop word from 1-6 run bytes and the flags describing
// what follows the run within the same node array.
func EncodeHop(chars []byte, newFlags uint8) Hop {
	if len(chars) < 1 || len(chars) > MaxHop {
		panic("word: hop run length out of range")
	}
	var w uint64
	for i, c := range chars {
		w |= uint64(c) << (56 - 8*i)
	}
	w |= uint64(newFlags) << 8
	w |= uint64(len(chars))
	return Hop(w)
}

// Len returns the number of run bytes packed into h.
func (h Hop) Len() int { return int(uint64(h) & 0xFF) }

// NewFlags returns the continuation flags describing what follows the run.
func (h Hop) NewFlags() uint8 { return uint8(uint64(h) >> 8) }

// Byte returns the i-th run byte, 0 <= i < Len().
func (h Hop) Byte(i int) byte { return byte(uint64(h) >> (56 - 8*i)) }

// Bytes returns the run's bytes in key order.
func (h Hop) Bytes() []byte {
	n := h.Len()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = h.Byte(i)
	}
	return out
}

// Matches reports whether the full run matches the corresponding prefix of
// input, via a single masked word comparison over the character bytes.
func (h Hop) Matches(input []byte) bool {
	n := h.Len()
	if len(input) < n {
		return false
	}
	var w uint64
	for i := 0; i < n; i++ {
		w |= uint64(input[i]) << (56 - 8*i)
	}
	return uint64(h)&^0xFFFF == w&^0xFFFF
}

// Mismatch returns the index of the first byte at which the run and input
// diverge, or the number of bytes compared (min(Len(), len(input))) if no
// divergence was found within that span.
func (h Hop) Mismatch(input []byte) int {
	n := h.Len()
	m := n
	if len(input) < m {
		m = len(input)
	}
	for i := 0; i < m; i++ {
		if h.Byte(i) != input[i] {
			return i
		}
	}
	return m
}
