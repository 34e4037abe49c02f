package bitset

import (
	"math/rand/v2"
	"testing"
)

func TestZeroValue(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("a zero value BitSet256 must not panic: %v", r)
		}
	}()

	var b BitSet256
	b.Set(42)
	b.Test(42)
	b.Clear(42)
	b.Rank0(42)
	b.Len()
	b.IsEmpty()
	b.FirstSet()
	b.LastSet()
	b.Chars()
}

func TestSetClearTest(t *testing.T) {
	t.Parallel()

	var b BitSet256
	for c := 0; c < 256; c += 3 {
		b.Set(byte(c))
	}
	for c := 0; c < 256; c++ {
		want := c%3 == 0
		if got := b.Test(byte(c)); got != want {
			t.Errorf("Test(%d), expected %v, got %v", c, want, got)
		}
	}
	for c := 0; c < 256; c += 3 {
		b.Clear(byte(c))
	}
	if !b.IsEmpty() {
		t.Errorf("expected empty set after clearing every member")
	}
}

func TestRank0(t *testing.T) {
	t.Parallel()

	var b BitSet256
	members := []byte{5, 10, 100, 200, 255}
	for _, m := range members {
		b.Set(m)
	}
	for i, m := range members {
		if got := b.Rank0(m); got != i {
			t.Errorf("Rank0(%d), expected %d, got %d", m, i, got)
		}
	}
	if got := b.Rank0(0); got != 0 {
		t.Errorf("Rank0(0), expected 0, got %d", got)
	}
	if got := b.Rank0(255); got != 4 {
		t.Errorf("Rank0(255), expected 4, got %d", got)
	}
}

func TestFirstLastSet(t *testing.T) {
	t.Parallel()

	var b BitSet256
	if _, ok := b.FirstSet(); ok {
		t.Errorf("FirstSet on empty set, expected ok=false")
	}
	if _, ok := b.LastSet(); ok {
		t.Errorf("LastSet on empty set, expected ok=false")
	}

	b.Set(17)
	b.Set(200)
	b.Set(63)

	if first, ok := b.FirstSet(); !ok || first != 17 {
		t.Errorf("FirstSet, expected (17, true), got (%d, %v)", first, ok)
	}
	if last, ok := b.LastSet(); !ok || last != 200 {
		t.Errorf("LastSet, expected (200, true), got (%d, %v)", last, ok)
	}
}

func TestChars(t *testing.T) {
	t.Parallel()

	var b BitSet256
	want := make([]byte, 0, 50)
	for range 50 {
		c := byte(rand.IntN(256))
		if !b.Test(c) {
			b.Set(c)
			want = append(want, c)
		}
	}
	got := b.Chars()
	if len(got) != b.Len() {
		t.Fatalf("Chars length, expected %d, got %d", b.Len(), len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("Chars, expected strictly ascending order, got %v", got)
		}
	}
	seen := map[byte]bool{}
	for _, c := range got {
		seen[c] = true
	}
	for _, c := range want {
		if !seen[c] {
			t.Errorf("Chars, missing member %d", c)
		}
	}
}
