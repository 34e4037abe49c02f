// Package value implements the trie's EOS value-cell policy: values that
// are small and pointer-free are stored inline, bit-for-bit, in the cell
// itself; everything else is stored behind an owned pointer allocated and
// freed alongside the cell.
//
// This is an internal package used by the octrie engine.
package value

import "reflect"

// inlineLimit is the largest value size, in bytes, that Cell will store
// inline rather than behind an owned pointer. It matches the width of the
// packed word an EOS position would occupy in the trie's node array.
const inlineLimit = 8

// Inlineable reports whether V's zero value can be stored inline in a Cell:
// it must fit in inlineLimit bytes and must not contain any value the
// garbage collector needs to track, since an inline cell is a fixed byte
// pattern the collector never scans.
func Inlineable[V any]() bool {
	var v V
	t := reflect.TypeOf(&v).Elem()
	return t.Size() <= inlineLimit && !containsPointer(t)
}

func containsPointer(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func,
		reflect.Slice, reflect.String, reflect.UnsafePointer:
		return true
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if containsPointer(t.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Array:
		return t.Len() > 0 && containsPointer(t.Elem())
	default:
		return false
	}
}

// IsZST reports whether type V is a zero-sized type, by allocating two
// instances of V and comparing their addresses: the Go runtime returns the
// same address (runtime.zerobase) for every zero-sized allocation, so equal
// addresses can only mean a zero-sized type.
func IsZST[V any]() bool {
	a, b := escapeToHeap[V]()
	return a == b
}

//go:noinline
func escapeToHeap[V any]() (*V, *V) {
	return new(V), new(V)
}

// Cell holds one EOS payload: either the value itself, for small
// pointer-free V, or an owned pointer to a heap-allocated V.
type Cell[V any] struct {
	inline bool
	val    V
	ptr    *V
}

// NewCell builds a Cell holding v, choosing inline or owned storage
// according to V's shape.
func NewCell[V any](v V) Cell[V] {
	if Inlineable[V]() {
		return Cell[V]{inline: true, val: v}
	}
	p := new(V)
	*p = v
	return Cell[V]{ptr: p}
}

// Get returns the stored value.
func (c Cell[V]) Get() V {
	if c.inline {
		return c.val
	}
	if c.ptr == nil {
		var zero V
		return zero
	}
	return *c.ptr
}

// Set overwrites the stored value, allocating an owned cell on first use
// for out-of-line values.
func (c *Cell[V]) Set(v V) {
	if c.inline {
		c.val = v
		return
	}
	if c.ptr == nil {
		c.ptr = new(V)
	}
	*c.ptr = v
}

// Destroy releases any owned storage and resets the stored value to V's
// zero value. The cell keeps its inline or owned storage mode.
func (c *Cell[V]) Destroy() {
	var zero V
	c.val = zero
	c.ptr = nil
}
