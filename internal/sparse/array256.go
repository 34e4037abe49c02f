// Package sparse implements a popcount-compressed array of at most 256
// items, one per possible byte value, used to hold a POP branch's child
// pointers alongside its 256-bit membership bitmap.
package sparse

import (
	"github.com/oclabs/octrie/internal/bitset"
)

// Array256 pairs a 256-bit membership bitmap with a dense slice holding one
// item per set bit, in ascending bit order. The two must only ever change
// together: InsertAt and DeleteAt keep them coupled.
type Array256[T any] struct {
	bitset.BitSet256
	Items []T
}

// Get returns the item for byte c, if present.
func (a *Array256[T]) Get(c byte) (value T, ok bool) {
	if a.Test(c) {
		return a.Items[a.Rank0(c)], true
	}
	return
}

// Len returns the number of items in the array.
func (a *Array256[T]) Len() int { return len(a.Items) }

// InsertAt places value at c, splicing it into Items at its ordinal
// position and setting the corresponding bitmap bit. It panics if c is
// already present; callers must check first when overwrite-in-place is
// wanted instead.
func (a *Array256[T]) InsertAt(c byte, value T) {
	if a.Test(c) {
		panic("sparse: InsertAt on an already-present byte")
	}
	rank := a.Rank0(c)
	a.insertItem(rank, value)
	a.Set(c)
}

// DeleteAt removes the item at c, if present, shifting the remaining items
// left and clearing the bitmap bit.
func (a *Array256[T]) DeleteAt(c byte) (value T, ok bool) {
	if !a.Test(c) {
		return
	}
	rank := a.Rank0(c)
	value = a.Items[rank]
	a.deleteItem(rank)
	a.Clear(c)
	return value, true
}

// insertItem inserts item at index i, shifting the tail one slot right.
func (a *Array256[T]) insertItem(i int, item T) {
	if len(a.Items) < cap(a.Items) {
		a.Items = a.Items[:len(a.Items)+1]
	} else {
		var zero T
		a.Items = append(a.Items, zero)
	}
	copy(a.Items[i+1:], a.Items[i:])
	a.Items[i] = item
}

// deleteItem removes the item at index i, shifting the tail one slot left
// and clearing the vacated final slot.
func (a *Array256[T]) deleteItem(i int) {
	var zero T
	copy(a.Items[i:], a.Items[i+1:])
	nl := len(a.Items) - 1
	a.Items[nl] = zero
	a.Items = a.Items[:nl]
}
