package lattice

import (
	"bytes"
	"errors"
	"testing"
)

func TestStringKnownPattern(t *testing.T) {
	l, err := FromSpins(2, 3, []Spin{
		Up, Down, Up,
		Down, Down, Up,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "░█░\n██░\n"
	if got := l.String(); got != want {
		t.Fatalf("String() = %q, expected %q", got, want)
	}

	var buf bytes.Buffer
	n, err := l.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != want || n != int64(len(want)) {
		t.Fatalf("WriteTo wrote %q (%d bytes), expected %q", buf.String(), n, want)
	}
}

func TestGlyphsStopsEarly(t *testing.T) {
	l := mustUniform(t, 3, 3, Down)
	count := 0
	for r := range l.Glyphs() {
		if r != GlyphDown {
			t.Fatalf("unexpected glyph %q", r)
		}
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("expected to stop after 2 glyphs, got %d", count)
	}
}

func TestInvalidSpinRendersMarker(t *testing.T) {
	l := mustUniform(t, 1, 2, Up)
	l.spins[1] = 3
	if got := l.String(); got != "░!\n" {
		t.Fatalf("String() = %q, expected marker glyph", got)
	}
	if Glyph(0) != GlyphInvalid {
		t.Fatal("zero spin should render as the invalid marker")
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteToPropagatesErrors(t *testing.T) {
	l := mustUniform(t, 2, 2, Up)
	if _, err := l.WriteTo(failingWriter{}); !errors.Is(err, errWrite) {
		t.Fatalf("expected write error, got %v", err)
	}
}
