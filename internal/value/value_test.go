package value

import (
	"math"
	"testing"
)

func TestIsZeroSizedType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{
			name: "struct{}",
			got:  IsZST[struct{}](),
			want: true,
		},
		{
			name: "[0]byte",
			got:  IsZST[[0]byte](),
			want: true,
		},
		{
			name: "int",
			got:  IsZST[int](),
			want: false,
		},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s, want %v, got %v", tt.name, tt.want, tt.got)
		}
	}
}

func TestInlineable(t *testing.T) {
	t.Parallel()

	if !Inlineable[int]() {
		t.Errorf("int, expected inlineable")
	}
	if !Inlineable[float64]() {
		t.Errorf("float64, expected inlineable")
	}
	if !Inlineable[[8]byte]() {
		t.Errorf("[8]byte, expected inlineable")
	}
	if Inlineable[string]() {
		t.Errorf("string, expected not inlineable (contains a pointer)")
	}
	if Inlineable[[]int]() {
		t.Errorf("[]int, expected not inlineable")
	}
	if Inlineable[[16]byte]() {
		t.Errorf("[16]byte, expected not inlineable (too large)")
	}
	type withPointer struct {
		n int
		p *int
	}
	if Inlineable[withPointer]() {
		t.Errorf("struct with a pointer field, expected not inlineable")
	}
}

func TestCellInlineRoundTrip(t *testing.T) {
	t.Parallel()

	c := NewCell(42)
	if got := c.Get(); got != 42 {
		t.Fatalf("Get, expected 42, got %d", got)
	}
	c.Set(7)
	if got := c.Get(); got != 7 {
		t.Fatalf("Get after Set, expected 7, got %d", got)
	}
	c.Destroy()
	if got := c.Get(); got != 0 {
		t.Fatalf("Get after Destroy, expected 0, got %d", got)
	}
}

func TestCellFloatBitExactRoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range []float64{0, math.Copysign(0, -1), 1, math.NaN(), math.Inf(1), math.Inf(-1), math.SmallestNonzeroFloat64} {
		c := NewCell(f)
		got := c.Get()
		if math.Float64bits(got) != math.Float64bits(f) {
			t.Errorf("roundtrip of %v, expected bit-exact match, got %v", f, got)
		}
	}
}

func TestCellOwnedRoundTrip(t *testing.T) {
	t.Parallel()

	type big struct {
		a, b, c int64
	}
	v := big{1, 2, 3}
	c := NewCell(v)
	if got := c.Get(); got != v {
		t.Fatalf("Get, expected %v, got %v", v, got)
	}
	c.Set(big{4, 5, 6})
	if got := c.Get(); got != (big{4, 5, 6}) {
		t.Fatalf("Get after Set, expected {4 5 6}, got %v", got)
	}
	c.Destroy()
	if got := c.Get(); got != (big{}) {
		t.Fatalf("Get after Destroy, expected zero value, got %v", got)
	}
}

func TestCellSetOnZeroValue(t *testing.T) {
	t.Parallel()

	var c Cell[int]
	c.Set(9)
	if got := c.Get(); got != 9 {
		t.Fatalf("Get after Set on zero-value Cell, expected 9, got %d", got)
	}
}
