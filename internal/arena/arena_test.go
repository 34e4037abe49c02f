package arena

import "testing"

func TestSizeClass(t *testing.T) {
	t.Parallel()

	cases := []struct{ n, want int }{
		{0, 0},
		{1, 4},
		{3, 4},
		{4, 4},
		{5, 8},
		{24, 24},
		{25, 32},
		{32, 32},
		{33, 48},
	}
	for _, tc := range cases {
		if got := SizeClass(tc.n); got != tc.want {
			t.Errorf("SizeClass(%d), expected %d, got %d", tc.n, tc.want, got)
		}
	}
}

type widget struct{ n int }

func TestPoolGetPut(t *testing.T) {
	t.Parallel()

	p := New[widget]()

	w := p.Get()
	w.n = 5
	live, total := p.Stats()
	if live != 1 || total != 1 {
		t.Fatalf("Stats after one Get, expected (1, 1), got (%d, %d)", live, total)
	}

	p.Put(w)
	live, total = p.Stats()
	if live != 0 || total != 1 {
		t.Fatalf("Stats after Put, expected (0, 1), got (%d, %d)", live, total)
	}

	w2 := p.Get()
	if w2.n != 0 {
		t.Errorf("Get after Put, expected a reset value, got n=%d", w2.n)
	}
	live, total = p.Stats()
	if live != 1 || total != 1 {
		t.Fatalf("Stats after reuse, expected (1, 1), got (%d, %d)", live, total)
	}
}

func TestNilPool(t *testing.T) {
	t.Parallel()

	var p *Pool[widget]
	w := p.Get()
	if w == nil {
		t.Fatal("Get on a nil Pool, expected a fresh non-nil value")
	}
	p.Put(w) // must not panic
	if live, total := p.Stats(); live != 0 || total != 0 {
		t.Errorf("Stats on a nil Pool, expected (0, 0), got (%d, %d)", live, total)
	}
}
