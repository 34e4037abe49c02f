package octrie

import (
	"github.com/oclabs/octrie/internal/arena"
	"github.com/oclabs/octrie/internal/sparse"
	"github.com/oclabs/octrie/internal/value"
	"github.com/oclabs/octrie/internal/word"
)

// put implements Insert (assign=false) and InsertOrAssign (assign=true). It
// returns the value now stored for key, and whether key was newly inserted.
func (t *Trie[V]) put(key []byte, val V, assign bool) (V, bool) {
	pool := t.pool()
	slot := &t.root
	remaining := key

	for {
		if slot.IsNil() {
			*slot = buildTail[V](pool, remaining, val)
			t.size++
			return val, true
		}

		arr := slot.Arr
		flags := slot.Flags
		carrier := ptrCarrier[V](slot)

		if flags.Has(EOS) && len(remaining) == 0 {
			if assign {
				arr.Value.Set(val)
			}
			return arr.Value.Get(), false
		}

		if flags.HasAny(Hop | Skip) {
			rb := arr.RunBytes(flags)
			m := commonPrefixLen(rb, remaining)
			if m < len(rb) {
				v, inserted := splitRun[V](pool, slot, flags, arr, m, remaining, val)
				if inserted {
					t.size++
				}
				return v, inserted
			}
			remaining = remaining[m:]
			flags = runNewFlags(flags, arr)
			carrier = runCarrier[V](slot.Flags, arr)
			if flags.Has(EOS) && len(remaining) == 0 {
				if assign {
					arr.Value.Set(val)
				}
				return arr.Value.Get(), false
			}
		}

		if len(remaining) == 0 {
			carrier.set(flags | EOS)
			arr.Value = value.NewCell(val)
			t.size++
			return val, true
		}

		if !flags.HasAny(List | Pop) {
			appendBranch[V](pool, carrier, flags, arr, remaining, val)
			t.size++
			return val, true
		}

		c := remaining[0]
		idx, exact := arr.findChild(flags, c)
		if !exact {
			growOrPromote[V](pool, carrier, flags, arr, idx, c, remaining[1:], val)
			t.size++
			return val, true
		}
		if flags.Has(List) {
			slot = &arr.ListKids[idx]
		} else {
			slot = &arr.Pop.Items[idx]
		}
		remaining = remaining[1:]
	}
}

// buildTail materialises a brand-new subtree for the given key remainder:
// a compressed run (Hop if it fits, Skip otherwise) followed by EOS, or
// just EOS if the remainder is empty.
func buildTail[V any](pool *arena.Pool[NodeArray[V]], remaining []byte, val V) Ptr[V] {
	arr := pool.Get()
	arr.Value = value.NewCell(val)
	if len(remaining) == 0 {
		return Ptr[V]{Flags: EOS, Arr: arr}
	}
	words, flag := buildRun(remaining, EOS, nil)
	arr.RunWords = words
	return Ptr[V]{Flags: flag, Arr: arr}
}

// rewrap reuses arr's branch and value sections under new continuation
// flags contFlags, prefixing them with a fresh compressed run over
// tailBytes when non-empty. arr is mutated in place and its old RunWords
// are discarded; callers must not read arr's old run content afterwards.
func rewrap[V any](tailBytes []byte, contFlags Flags, arr *NodeArray[V]) Ptr[V] {
	if len(tailBytes) == 0 {
		arr.RunWords = nil
		return Ptr[V]{Flags: contFlags, Arr: arr}
	}
	words, flag := buildRun(tailBytes, contFlags, arr.RunWords)
	arr.RunWords = words
	return Ptr[V]{Flags: flag, Arr: arr}
}

// splitRun handles a mismatch (or early exhaustion of remaining) found m
// bytes into the compressed run governed by entryFlags. It replaces *slot
// with the restructured subtree and reports whether a new key was
// inserted (splitting a run is always an insertion: the key was not
// already present under this run).
func splitRun[V any](pool *arena.Pool[NodeArray[V]], slot *Ptr[V], entryFlags Flags, arr *NodeArray[V], m int, remaining []byte, val V) (V, bool) {
	rb := arr.RunBytes(entryFlags)
	afterFlags := runNewFlags(entryFlags, arr)

	if m == len(remaining) {
		// The new key is a strict prefix of the existing run. EOS and a run
		// never share one array's flags (there would be nowhere to put a
		// second value cell), so the new key's value is planted at a fresh
		// position reached through a one-entry LIST branch keyed on the
		// run's next byte, whose child preserves the run's remainder and
		// whatever followed it exactly as it was.
		child := rewrap[V](rb[m+1:], afterFlags, arr)
		head := pool.Get()
		head.Value = value.NewCell(val)
		head.List = word.EncodeList([]byte{rb[m]})
		head.ListKids = []Ptr[V]{child}

		leading := rb[:m]
		if len(leading) == 0 {
			*slot = Ptr[V]{Flags: EOS | List, Arr: head}
			return val, true
		}
		words, flag := buildRun(leading, EOS|List, nil)
		head.RunWords = words
		*slot = Ptr[V]{Flags: flag, Arr: head}
		return val, true
	}

	// A genuine divergence: rb[m] and remaining[m] differ. Both sides
	// become children of a fresh two-entry LIST branch.
	oldChar := rb[m]
	oldChild := rewrap[V](rb[m+1:], afterFlags, arr)

	newChar := remaining[m]
	newChild := buildTail[V](pool, remaining[m+1:], val)

	var chars []byte
	var kids []Ptr[V]
	if oldChar < newChar {
		chars, kids = []byte{oldChar, newChar}, []Ptr[V]{oldChild, newChild}
	} else {
		chars, kids = []byte{newChar, oldChar}, []Ptr[V]{newChild, oldChild}
	}
	branch := pool.Get()
	branch.List, branch.ListKids = word.EncodeList(chars), kids

	prefix := rb[:m]
	if len(prefix) == 0 {
		*slot = Ptr[V]{Flags: List, Arr: branch}
		return val, true
	}
	words, flag := buildRun(prefix, List, nil)
	branch.RunWords = words
	*slot = Ptr[V]{Flags: flag, Arr: branch}
	return val, true
}

// appendBranch handles reaching the end of an array's content (no run left
// to match, no branch yet) with key bytes still remaining: it attaches a
// new one-entry LIST branch keyed on the next byte, whose child holds the
// rest of the key.
func appendBranch[V any](pool *arena.Pool[NodeArray[V]], carrier flagCarrier[V], flags Flags, arr *NodeArray[V], remaining []byte, val V) {
	child := buildTail[V](pool, remaining[1:], val)
	arr.List = word.EncodeList([]byte{remaining[0]})
	arr.ListKids = []Ptr[V]{child}
	carrier.set(flags | List)
}

// growOrPromote handles a branch character not yet present: growing a LIST
// in place, promoting a full LIST to POP, or extending a POP.
func growOrPromote[V any](pool *arena.Pool[NodeArray[V]], carrier flagCarrier[V], flags Flags, arr *NodeArray[V], idx int, c byte, tail []byte, val V) {
	child := buildTail[V](pool, tail, val)

	switch {
	case flags.Has(List):
		n := arr.List.Count()
		if n < word.MaxList {
			chars := arr.List.Chars()
			chars = append(chars, 0)
			copy(chars[idx+1:], chars[idx:n])
			chars[idx] = c
			arr.List = word.EncodeList(chars)

			kids := append(arr.ListKids, Ptr[V]{})
			copy(kids[idx+1:], kids[idx:n])
			kids[idx] = child
			arr.ListKids = kids
			return
		}

		// LIST is full: promote to POP.
		oldChars := arr.List.Chars()
		oldKids := arr.ListKids
		var pop sparse.Array256[Ptr[V]]
		for i, ch := range oldChars {
			pop.InsertAt(ch, oldKids[i])
		}
		pop.InsertAt(c, child)
		arr.Pop = pop
		arr.List = 0
		arr.ListKids = nil
		carrier.set((flags &^ List) | Pop)

	case flags.Has(Pop):
		arr.Pop.InsertAt(c, child)

	default:
		panic("octrie: growOrPromote requires an existing branch")
	}
}
