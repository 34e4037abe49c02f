package octrie

// Find returns the value stored for key and true, or the zero value and
// false if key is absent.
func (t *Trie[V]) Find(key []byte) (V, bool) {
	ptr := t.root
	for {
		if ptr.IsNil() {
			var zero V
			return zero, false
		}
		arr := ptr.Arr
		flags := ptr.Flags

		if flags.Has(EOS) && len(key) == 0 {
			return arr.Value.Get(), true
		}

		if flags.HasAny(Hop | Skip) {
			rb := arr.RunBytes(flags)
			if len(key) < len(rb) {
				var zero V
				return zero, false
			}
			for i := range rb {
				if rb[i] != key[i] {
					var zero V
					return zero, false
				}
			}
			key = key[len(rb):]
			flags = runNewFlags(flags, arr)
			if flags.Has(EOS) && len(key) == 0 {
				return arr.Value.Get(), true
			}
		}

		if len(key) == 0 || !flags.HasAny(List|Pop) {
			var zero V
			return zero, false
		}

		idx, exact := arr.findChild(flags, key[0])
		if !exact {
			var zero V
			return zero, false
		}
		ptr = arr.child(flags, idx)
		key = key[1:]
	}
}
