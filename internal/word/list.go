package word

// MaxList is the largest number of children a List word can hold before the
// branch must promote to a bitmap representation.
const MaxList = 7

// List packs up to 7 sorted characters into bytes 0-6 and a count into
// byte 7. The i-th packed character corresponds to the i-th child pointer
// stored alongside the array that owns this word.
type List uint64

// EncodeList builds a List word from 1-7 strictly ascending characters.
func EncodeList(chars []byte) List {
	if len(chars) < 1 || len(chars) > MaxList {
		panic("word: list length out of range")
	}
	var w uint64
	for i, c := range chars {
		w |= uint64(c) << (56 - 8*i)
	}
	w |= uint64(len(chars))
	return List(w)
}

// Count returns the number of characters packed into l.
func (l List) Count() int { return int(uint64(l) & 0xFF) }

// Byte returns the i-th packed character, 0 <= i < Count().
func (l List) Byte(i int) byte { return byte(uint64(l) >> (56 - 8*i)) }

// Chars returns the packed characters in ascending order.
func (l List) Chars() []byte {
	n := l.Count()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = l.Byte(i)
	}
	return out
}

// IndexOf returns the position of c among the packed characters and true,
// or the position at which c would be inserted to keep ascending order and
// false.
func (l List) IndexOf(c byte) (int, bool) {
	n := l.Count()
	for i := 0; i < n; i++ {
		b := l.Byte(i)
		if b == c {
			return i, true
		}
		if b > c {
			return i, false
		}
	}
	return n, false
}
