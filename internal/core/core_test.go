package core

import "testing"

func TestTorusWrapArbitraryOffsets(t *testing.T) {
	tor := NewTorus(5, 3)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{4, 2, 4, 2},
		{5, 3, 0, 0},
		{-1, -1, 4, 2},
		{-6, -4, 4, 2},
		{17, 10, 2, 1},
		{-15, -9, 0, 0},
	}
	for _, c := range cases {
		x, y := tor.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestTorusIndexRowMajor(t *testing.T) {
	tor := NewTorus(4, 2)
	seen := make(map[int]bool)
	for y := 0; y < tor.H; y++ {
		for x := 0; x < tor.W; x++ {
			idx := tor.Index(x, y)
			if idx != y*4+x {
				t.Fatalf("Index(%d,%d) = %d, expected %d", x, y, idx, y*4+x)
			}
			if seen[idx] {
				t.Fatalf("index %d produced twice", idx)
			}
			seen[idx] = true
		}
	}
	if len(seen) != tor.Len() {
		t.Fatalf("expected %d distinct indices, got %d", tor.Len(), len(seen))
	}
	if got := tor.WrapIndex(-1, 3); got != tor.Index(3, 1) {
		t.Fatalf("WrapIndex(-1,3) = %d, expected %d", got, tor.Index(3, 1))
	}
}

func TestNewTorusClampsDimensions(t *testing.T) {
	tor := NewTorus(0, -3)
	if tor.W != 1 || tor.H != 1 {
		t.Fatalf("expected 1x1 torus, got %dx%d", tor.W, tor.H)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs between identically seeded generators", i)
		}
		if a.IntN(30) != b.IntN(30) {
			t.Fatalf("int draw %d differs between identically seeded generators", i)
		}
	}
	if a.Seed() != 7 {
		t.Fatalf("Seed() = %d, expected 7", a.Seed())
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		if n := r.IntN(3); n < 0 || n >= 3 {
			t.Fatalf("IntN(3) out of range: %d", n)
		}
	}
	if r.IntN(0) != 0 {
		t.Fatal("IntN(0) should return 0")
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}
