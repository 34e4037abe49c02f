// Package octrie implements an ordered associative container backed by a
// compact, cache-conscious trie. Keys are byte-lexicographically ordered
// byte strings (or fixed-width byte sequences for numeric-style keys);
// values are arbitrary user types.
//
// Every node of the trie is a run of packed 64-bit words reached through a
// single tagged pointer: path compression is represented inline (HOP, 1-6
// bytes) or out-of-line (SKIP, 7+ bytes), and branch points adapt from a
// sorted small-list representation (LIST, up to 7 children) to a 256-bit
// bitmap representation (POP, 8+ children) as they grow, and back as they
// shrink. See internal/word and internal/bitset for the packed encodings,
// and internal/value for the inline-vs-owned value storage policy.
//
// This package is the engine only: it has no notion of what a key "means"
// beyond ordered bytes, and does not encode numeric types or provide
// iterator cursor objects — callers build those on top of Trie.
package octrie
