package octrie

// Merge inserts every key of other into t that t does not already contain,
// leaving t's existing entries and other itself untouched.
func (t *Trie[V]) Merge(other *Trie[V]) {
	if other == nil {
		return
	}
	walk[V](other.root, nil, func(key []byte, v V) {
		t.Insert(key, v)
	})
}

// walk visits every stored key reachable through ptr in ascending order,
// whose path so far spells prefix. It only reads ptr's subtree.
func walk[V any](ptr Ptr[V], prefix []byte, visit func([]byte, V)) {
	if ptr.IsNil() {
		return
	}
	arr := ptr.Arr
	flags := ptr.Flags

	key := append([]byte{}, prefix...)
	if flags.HasAny(Hop | Skip) {
		key = append(key, arr.RunBytes(flags)...)
		flags = runNewFlags(flags, arr)
	}
	if flags.Has(EOS) {
		visit(key, arr.Value.Get())
	}
	chars, kids := arr.branchEntries(flags)
	for i, c := range chars {
		walk[V](kids[i], append(append([]byte{}, key...), c), visit)
	}
}
