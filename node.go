package octrie

import (
	"github.com/oclabs/octrie/internal/arena"
	"github.com/oclabs/octrie/internal/sparse"
	"github.com/oclabs/octrie/internal/value"
	"github.com/oclabs/octrie/internal/word"
)

// NodeArray is the content reachable through one tagged pointer: an
// optional compressed run, an optional branch, and an optional value cell,
// per the combination of bits set on the Ptr that names it.
//
// A raw contiguous byte buffer would hide its child pointers and its value
// pointer from the garbage collector, so unlike the packed-word run
// encoding (which is a real []uint64, matching the wire-level layout
// bit-for-bit), the branch and value sections are held as ordinary
// GC-tracked Go fields instead of further packed words.
type NodeArray[V any] struct {
	// RunWords holds the packed compressed-run words, present when the
	// owning Ptr's flags (or, after a run, that run's own continuation
	// flags) include Hop or Skip. Length 1 for a Hop word; 1+ceil(n/8) for
	// a Skip header followed by its packed body.
	RunWords []uint64

	// List holds a small branch's sorted characters and List.Count()
	// matching child pointers, present when the governing flags include
	// List.
	List     word.List
	ListKids []Ptr[V]

	// Pop holds a large branch's 256-bit membership bitmap and its child
	// pointers in ascending bit order, present when the governing flags
	// include Pop.
	Pop sparse.Array256[Ptr[V]]

	// Value holds the EOS payload, present when the governing flags
	// include EOS.
	Value value.Cell[V]
}

// RunBytes decodes the compressed run's bytes, given the flags governing
// this position (Hop or Skip must be set).
func (n *NodeArray[V]) RunBytes(flags Flags) []byte {
	switch {
	case flags.Has(Hop):
		return word.Hop(n.RunWords[0]).Bytes()
	case flags.Has(Skip):
		h := word.SkipHeader(n.RunWords[0])
		return word.DecodeBody(n.RunWords[1:], h.Len())
	default:
		return nil
	}
}

// runNewFlags returns the flags describing what follows the compressed run
// governed by flags, i.e. the run's own continuation bits.
func runNewFlags[V any](flags Flags, n *NodeArray[V]) Flags {
	switch {
	case flags.Has(Hop):
		return Flags(word.Hop(n.RunWords[0]).NewFlags())
	case flags.Has(Skip):
		return Flags(word.SkipHeader(n.RunWords[0]).NewFlags())
	default:
		return flags
	}
}

// branchEntries returns the branch's characters and children in ascending
// order, given the flags governing this position.
func (n *NodeArray[V]) branchEntries(flags Flags) ([]byte, []Ptr[V]) {
	switch {
	case flags.Has(List):
		return n.List.Chars(), n.ListKids
	case flags.Has(Pop):
		return n.Pop.Chars(), n.Pop.Items
	default:
		return nil, nil
	}
}

// findChild locates byte c among the branch's children: idx is its ordinal
// position (or insertion point, if exact is false).
func (n *NodeArray[V]) findChild(flags Flags, c byte) (idx int, exact bool) {
	switch {
	case flags.Has(List):
		return n.List.IndexOf(c)
	case flags.Has(Pop):
		return n.Pop.Rank0(c), n.Pop.Test(c)
	default:
		return 0, false
	}
}

// child returns the branch child at ordinal idx.
func (n *NodeArray[V]) child(flags Flags, idx int) Ptr[V] {
	if flags.Has(List) {
		return n.ListKids[idx]
	}
	return n.Pop.Items[idx]
}

// buildRun encodes a compressed run for bytes, with the given continuation
// flags, choosing Hop or Skip by length. reuse, if non-nil, is the run's
// previous backing array (about to be discarded by the caller): for a
// Skip-length run, when its capacity already covers bytes' size class,
// buildRun rewrites it in place instead of allocating, so a Skip run that
// shrinks or grows within its current size class never reallocates. A
// Hop-length run always gets a fresh one-word slice. Pass nil when there
// is no previous run to reuse.
func buildRun(bytes []byte, newFlags Flags, reuse []uint64) (words []uint64, flag Flags) {
	if len(bytes) <= word.MaxHop {
		return []uint64{uint64(word.EncodeHop(bytes, uint8(newFlags)))}, Hop
	}
	header := word.EncodeSkipHeader(uint64(len(bytes)), uint8(newFlags))
	body := word.EncodeBody(bytes)
	words = reserveRunWords(reuse, len(bytes))
	words = append(words, uint64(header))
	words = append(words, body...)
	return words, Skip
}

// reserveRunWords returns an empty []uint64 with capacity for at least
// arena.SizeClass(byteLen) bytes worth of packed Skip body, one word per
// header plus one word per 8 body bytes. It reuses reuse's backing array
// when that capacity is already there, so a Skip run's backing words are
// only reallocated when the new length crosses a size-class boundary.
func reserveRunWords(reuse []uint64, byteLen int) []uint64 {
	need := 1 + int(word.NumBodyWords(uint64(arena.SizeClass(byteLen))))
	if cap(reuse) >= need {
		return reuse[:0]
	}
	return make([]uint64, 0, need)
}

// commonPrefixLen returns the length of the shared leading run of a and b.
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
