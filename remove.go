package octrie

import (
	"github.com/oclabs/octrie/internal/arena"
	"github.com/oclabs/octrie/internal/sparse"
	"github.com/oclabs/octrie/internal/word"
)

// removeRec deletes key from the subtree reached through *slot, reporting
// whether it was present. It restructures *slot (and its ancestors, via
// the recursion unwinding) to keep every remaining array well-formed.
func (t *Trie[V]) removeRec(slot *Ptr[V], key []byte) bool {
	if slot.IsNil() {
		return false
	}
	pool := t.pool()

	arr := slot.Arr
	flags := slot.Flags
	carrier := ptrCarrier[V](slot)

	if flags.Has(EOS) && len(key) == 0 {
		removeHere[V](pool, carrier, flags, arr, slot)
		return true
	}

	if flags.HasAny(Hop | Skip) {
		rb := arr.RunBytes(flags)
		if len(key) < len(rb) {
			return false
		}
		for i := range rb {
			if rb[i] != key[i] {
				return false
			}
		}
		key = key[len(rb):]
		flags = runNewFlags(flags, arr)
		carrier = runCarrier[V](slot.Flags, arr)
		if flags.Has(EOS) && len(key) == 0 {
			removeHere[V](pool, carrier, flags, arr, slot)
			return true
		}
	}

	if len(key) == 0 || !flags.HasAny(List|Pop) {
		return false
	}

	c := key[0]
	idx, exact := arr.findChild(flags, c)
	if !exact {
		return false
	}

	var childSlot *Ptr[V]
	if flags.Has(List) {
		childSlot = &arr.ListKids[idx]
	} else {
		childSlot = &arr.Pop.Items[idx]
	}

	if !t.removeRec(childSlot, key[1:]) {
		return false
	}
	if childSlot.IsNil() {
		collapseBranch[V](pool, slot, flags, arr, carrier, idx, c)
	}
	return true
}

// removeHere destroys the value living at this position. If the array
// still has a branch beyond it, only the EOS bit is cleared; otherwise the
// whole array is dropped and the cascade continues in the caller.
func removeHere[V any](pool *arena.Pool[NodeArray[V]], carrier flagCarrier[V], flags Flags, arr *NodeArray[V], slot *Ptr[V]) {
	arr.Value.Destroy()
	if flags.HasAny(List | Pop) {
		carrier.set(flags &^ EOS)
		return
	}
	*slot = Ptr[V]{}
	pool.Put(arr)
}

// collapseBranch removes character c (already deleted from the child slot
// itself, which is now nil) from the branch governed by flags, shrinking a
// LIST in place, demoting a POP back to LIST at 7 children, or dropping the
// branch entirely once it is empty.
func collapseBranch[V any](pool *arena.Pool[NodeArray[V]], slot *Ptr[V], flags Flags, arr *NodeArray[V], carrier flagCarrier[V], idx int, c byte) {
	switch {
	case flags.Has(List):
		n := arr.List.Count()
		if n > 1 {
			chars := arr.List.Chars()
			kids := arr.ListKids
			chars = append(chars[:idx], chars[idx+1:]...)
			newKids := append(append([]Ptr[V]{}, kids[:idx]...), kids[idx+1:]...)
			arr.List = word.EncodeList(chars)
			arr.ListKids = newKids
			return
		}
		arr.List = 0
		arr.ListKids = nil
		dropBranch[V](pool, slot, flags, arr, carrier)

	case flags.Has(Pop):
		arr.Pop.DeleteAt(c)
		switch n := arr.Pop.Len(); {
		case n > word.MaxList:
			return
		case n == word.MaxList:
			chars := arr.Pop.Chars()
			kids := append([]Ptr[V]{}, arr.Pop.Items...)
			arr.List = word.EncodeList(chars)
			arr.ListKids = kids
			arr.Pop = sparse.Array256[Ptr[V]]{}
			carrier.set((flags &^ Pop) | List)
		case n == 0:
			dropBranch[V](pool, slot, flags, arr, carrier)
		}
	}
}

// dropBranch removes a now-empty branch. If EOS still lives at this
// position, only the branch bits are cleared; otherwise nothing is left
// here at all and the whole array is dropped.
func dropBranch[V any](pool *arena.Pool[NodeArray[V]], slot *Ptr[V], flags Flags, arr *NodeArray[V], carrier flagCarrier[V]) {
	if flags.Has(EOS) {
		carrier.set(flags &^ (List | Pop))
		return
	}
	*slot = Ptr[V]{}
	pool.Put(arr)
}
