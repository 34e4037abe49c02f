package octrie

// First returns the smallest key in the trie, and Last the largest.
func (t *Trie[V]) First() ([]byte, V, bool) { return extreme[V](t.root, nil, true) }
func (t *Trie[V]) Last() ([]byte, V, bool)  { return extreme[V](t.root, nil, false) }

// LowerBound returns the smallest stored key >= key.
func (t *Trie[V]) LowerBound(key []byte) ([]byte, V, bool) {
	return search[V](t.root, nil, key, true, true)
}

// UpperBound returns the smallest stored key > key.
func (t *Trie[V]) UpperBound(key []byte) ([]byte, V, bool) {
	return search[V](t.root, nil, key, true, false)
}

// Next returns the smallest stored key strictly greater than key.
func (t *Trie[V]) Next(key []byte) ([]byte, V, bool) {
	return search[V](t.root, nil, key, true, false)
}

// Prev returns the largest stored key strictly less than key.
func (t *Trie[V]) Prev(key []byte) ([]byte, V, bool) {
	return search[V](t.root, nil, key, false, false)
}

// extreme finds the leftmost (leftmost=true) or rightmost stored key
// reachable through ptr, whose path so far spells prefix.
func extreme[V any](ptr Ptr[V], prefix []byte, leftmost bool) ([]byte, V, bool) {
	var zero V
	if ptr.IsNil() {
		return nil, zero, false
	}
	arr := ptr.Arr
	flags := ptr.Flags

	key := append([]byte{}, prefix...)
	if flags.HasAny(Hop | Skip) {
		key = append(key, arr.RunBytes(flags)...)
		flags = runNewFlags(flags, arr)
	}

	if leftmost {
		if flags.Has(EOS) {
			return key, arr.Value.Get(), true
		}
		return descendEdge[V](arr, flags, key, true)
	}

	if flags.HasAny(List | Pop) {
		if k, v, ok := descendEdge[V](arr, flags, key, false); ok {
			return k, v, ok
		}
	}
	if flags.Has(EOS) {
		return key, arr.Value.Get(), true
	}
	return nil, zero, false
}

// descendEdge follows the smallest (leftmost=true) or largest branch child
// of arr and continues the extreme search from there.
func descendEdge[V any](arr *NodeArray[V], flags Flags, key []byte, leftmost bool) ([]byte, V, bool) {
	var zero V
	chars, kids := arr.branchEntries(flags)
	if len(chars) == 0 {
		return nil, zero, false
	}
	i := 0
	if !leftmost {
		i = len(chars) - 1
	}
	return extreme[V](kids[i], append(key, chars[i]), leftmost)
}

// search implements LowerBound/UpperBound/Next/Prev as one backtracking
// walk: forward=true looks for the smallest match >= key (inclusive=true)
// or > key (inclusive=false); forward=false looks for the largest match <
// key. prefix is the path spelled out to reach ptr.
func search[V any](ptr Ptr[V], prefix []byte, key []byte, forward, inclusive bool) ([]byte, V, bool) {
	var zero V
	if ptr.IsNil() {
		return nil, zero, false
	}
	arr := ptr.Arr
	flags := ptr.Flags

	if flags.HasAny(Hop | Skip) {
		rb := arr.RunBytes(flags)
		m := commonPrefixLen(rb, key)
		switch {
		case m < len(rb) && m < len(key):
			// The run diverges from key before either is exhausted: every
			// key under this run is either entirely above or entirely
			// below key, decided by that one differing byte.
			if (rb[m] > key[m]) == forward {
				return extreme[V](ptr, prefix, forward)
			}
			return nil, zero, false
		case m < len(rb) && m == len(key):
			// key ends strictly inside the run: every key under this run
			// extends past key, so all of them are strictly greater,
			// regardless of inclusive.
			if forward {
				return extreme[V](ptr, prefix, true)
			}
			return nil, zero, false
		default:
			// m == len(rb): the run is fully consumed, whether or not key
			// ends at exactly this boundary too. Fall through so the
			// len(key) == 0 handling below, which honors inclusive, gets
			// to decide an exact match at the run's end.
			key = key[m:]
			prefix = append(append([]byte{}, prefix...), rb...)
			flags = runNewFlags(flags, arr)
		}
	}

	if len(key) == 0 {
		if inclusive && flags.Has(EOS) {
			return prefix, arr.Value.Get(), true
		}
		if forward {
			return descendEdge[V](arr, flags, prefix, true)
		}
		return nil, zero, false
	}

	if !flags.HasAny(List | Pop) {
		if !forward && flags.Has(EOS) {
			return prefix, arr.Value.Get(), true
		}
		return nil, zero, false
	}

	c := key[0]
	idx, exact := arr.findChild(flags, c)
	chars, kids := arr.branchEntries(flags)

	if exact {
		if k, v, ok := search[V](kids[idx], append(prefix, c), key[1:], forward, inclusive); ok {
			return k, v, ok
		}
	}

	if forward {
		start := idx
		if exact {
			start = idx + 1
		}
		for i := start; i < len(chars); i++ {
			return extreme[V](kids[i], append(prefix, chars[i]), true)
		}
	} else {
		start := idx - 1
		for i := start; i >= 0; i-- {
			return extreme[V](kids[i], append(prefix, chars[i]), false)
		}
	}

	if !forward && flags.Has(EOS) {
		return prefix, arr.Value.Get(), true
	}
	return nil, zero, false
}
