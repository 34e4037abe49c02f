package octrie

import (
	"github.com/oclabs/octrie/internal/word"
)

// carrierKind names one of the three physical locations that can hold the
// "what follows here" flags for a point in the trie.
type carrierKind int

const (
	carrierPtr carrierKind = iota
	carrierHop
	carrierSkip
)

// flagCarrier locates the flags governing the content that starts at some
// point within a node array: either the tag bits of the tagged pointer that
// reaches the array, or the continuation bits embedded in that array's own
// HOP word or SKIP header. Insert and remove both need to read and rewrite
// whichever of these three locations is currently in play; folding that
// into one small cursor avoids three parallel code paths for every
// structural edit.
type flagCarrier[V any] struct {
	kind carrierKind
	slot *Ptr[V]       // valid when kind == carrierPtr
	arr  *NodeArray[V] // valid when kind == carrierHop or carrierSkip
}

func ptrCarrier[V any](slot *Ptr[V]) flagCarrier[V] {
	return flagCarrier[V]{kind: carrierPtr, slot: slot}
}

func runCarrier[V any](entryFlags Flags, arr *NodeArray[V]) flagCarrier[V] {
	if entryFlags.Has(Skip) {
		return flagCarrier[V]{kind: carrierSkip, arr: arr}
	}
	return flagCarrier[V]{kind: carrierHop, arr: arr}
}

// get reads the flags currently held at this carrier's location.
func (c flagCarrier[V]) get() Flags {
	switch c.kind {
	case carrierPtr:
		return c.slot.Flags
	case carrierHop:
		return Flags(word.Hop(c.arr.RunWords[0]).NewFlags())
	case carrierSkip:
		return Flags(word.SkipHeader(c.arr.RunWords[0]).NewFlags())
	default:
		panic("octrie: invalid flag carrier")
	}
}

// set overwrites the flags held at this carrier's location.
func (c flagCarrier[V]) set(f Flags) {
	switch c.kind {
	case carrierPtr:
		c.slot.Flags = f
	case carrierHop:
		h := word.Hop(c.arr.RunWords[0])
		c.arr.RunWords[0] = uint64(word.EncodeHop(h.Bytes(), uint8(f)))
	case carrierSkip:
		h := word.SkipHeader(c.arr.RunWords[0])
		c.arr.RunWords[0] = uint64(word.EncodeSkipHeader(h.Len(), uint8(f)))
	default:
		panic("octrie: invalid flag carrier")
	}
}

func (c flagCarrier[V]) add(bits Flags)    { c.set(c.get() | bits) }
func (c flagCarrier[V]) remove(bits Flags) { c.set(c.get() &^ bits) }
