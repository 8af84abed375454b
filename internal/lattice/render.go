package lattice

import (
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// Glyphs used when rendering a lattice as text.
const (
	GlyphUp      = '░'
	GlyphDown    = '█'
	GlyphInvalid = '!'
)

// Glyph returns the glyph for s. Values outside {±1} map to GlyphInvalid,
// which only shows up if the lattice invariant has been broken.
func Glyph(s Spin) rune {
	switch s {
	case Up:
		return GlyphUp
	case Down:
		return GlyphDown
	default:
		return GlyphInvalid
	}
}

// Glyphs yields one glyph per site in row-major order, with a '\n' after
// each row. The sequence reads the lattice lazily, so it reflects any flips
// made before iteration reaches a site.
func (l *Lattice) Glyphs() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for y := 0; y < l.torus.H; y++ {
			for x := 0; x < l.torus.W; x++ {
				if !yield(Glyph(l.spins[l.torus.Index(x, y)])) {
					return
				}
			}
			if !yield('\n') {
				return
			}
		}
	}
}

// String renders the lattice as H newline-terminated rows of W glyphs.
func (l *Lattice) String() string {
	var b strings.Builder
	b.Grow((l.torus.W*utf8.UTFMax + 1) * l.torus.H)
	for r := range l.Glyphs() {
		b.WriteRune(r)
	}
	return b.String()
}

// WriteTo writes the rendered lattice to w one row at a time.
func (l *Lattice) WriteTo(w io.Writer) (int64, error) {
	var total int64
	row := make([]byte, 0, l.torus.W*utf8.UTFMax+1)
	for r := range l.Glyphs() {
		row = utf8.AppendRune(row, r)
		if r != '\n' {
			continue
		}
		n, err := w.Write(row)
		total += int64(n)
		if err != nil {
			return total, err
		}
		row = row[:0]
	}
	return total, nil
}
