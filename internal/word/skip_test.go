package word

import (
	"bytes"
	"testing"
)

func TestSkipHeaderRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []uint64{7, 8, 100, 1<<20 - 1} {
		h := EncodeSkipHeader(n, 0x0d)
		if got := h.Len(); got != n {
			t.Errorf("Len, expected %d, got %d", n, got)
		}
		if got := h.NewFlags(); got != 0x0d {
			t.Errorf("NewFlags, expected 0x0d, got %#x", got)
		}
	}
}

func TestSkipBodyRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 7, 8, 9, 63, 64, 65} {
		chars := make([]byte, n)
		for i := range chars {
			chars[i] = byte(i*7 + 3)
		}
		words := EncodeBody(chars)
		if got, want := len(words), int(NumBodyWords(uint64(n))); got != want {
			t.Fatalf("len(words), expected %d, got %d", want, got)
		}
		got := DecodeBody(words, uint64(n))
		if !bytes.Equal(got, chars) {
			t.Fatalf("DecodeBody, expected %v, got %v", chars, got)
		}
	}
}

func TestSkipBodyOrdering(t *testing.T) {
	t.Parallel()

	// Byte-lexicographic order over the run must equal unsigned numeric
	// order over its packed words, matching the same guarantee Hop makes.
	lo := EncodeBody([]byte("aaaaaaaa" + "aaaaaaab"))
	hi := EncodeBody([]byte("aaaaaaaa" + "aaaaaaac"))
	if !(lo[1] < hi[1]) {
		t.Errorf("expected lo[1] < hi[1], got %#x >= %#x", lo[1], hi[1])
	}
}
