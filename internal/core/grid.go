package core

// Torus describes a W×H grid with periodic boundaries, stored row-major.
type Torus struct {
	W, H int
}

// NewTorus returns a torus with the given dimensions. Non-positive dimensions
// are clamped to 1.
func NewTorus(w, h int) Torus {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Torus{W: w, H: h}
}

// Len returns the number of sites.
func (t Torus) Len() int { return t.W * t.H }

// Wrap maps arbitrary integer coordinates onto [0, W)×[0, H).
func (t Torus) Wrap(x, y int) (int, int) {
	x = (x%t.W + t.W) % t.W
	y = (y%t.H + t.H) % t.H
	return x, y
}

// Index returns the linear slice index for in-range coordinates (x, y).
func (t Torus) Index(x, y int) int { return y*t.W + x }

// WrapIndex wraps (x, y) and returns its linear index.
func (t Torus) WrapIndex(x, y int) int {
	x, y = t.Wrap(x, y)
	return t.Index(x, y)
}
