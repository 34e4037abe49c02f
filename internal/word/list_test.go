package word

import (
	"bytes"
	"testing"
)

func TestEncodeListRoundTrip(t *testing.T) {
	t.Parallel()

	chars := []byte{'a', 'c', 'f', 'z'}
	l := EncodeList(chars)
	if got := l.Count(); got != len(chars) {
		t.Fatalf("Count, expected %d, got %d", len(chars), got)
	}
	if got := l.Chars(); !bytes.Equal(got, chars) {
		t.Fatalf("Chars, expected %v, got %v", chars, got)
	}
}

func TestEncodeListPanicsOnBadLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 8} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("EncodeList(len=%d), expected panic", n)
				}
			}()
			EncodeList(make([]byte, n))
		}()
	}
}

func TestListIndexOf(t *testing.T) {
	t.Parallel()

	l := EncodeList([]byte{'b', 'd', 'f'})

	cases := []struct {
		c         byte
		wantIdx   int
		wantExact bool
	}{
		{'a', 0, false},
		{'b', 0, true},
		{'c', 1, false},
		{'d', 1, true},
		{'e', 2, false},
		{'f', 2, true},
		{'g', 3, false},
	}
	for _, tc := range cases {
		idx, exact := l.IndexOf(tc.c)
		if idx != tc.wantIdx || exact != tc.wantExact {
			t.Errorf("IndexOf(%q), expected (%d, %v), got (%d, %v)", tc.c, tc.wantIdx, tc.wantExact, idx, exact)
		}
	}
}
