package render

import (
	"fmt"
	"image/color"
)

// FillPalette converts cell values into RGBA pixels in buf using palette.
// Values past the end of the palette take its last entry, which sims use as
// their error marker. An empty palette clears buf to transparent black.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) error {
	if len(buf) != 4*len(cells) {
		return fmt.Errorf("render: buffer holds %d bytes, need %d", len(buf), 4*len(cells))
	}
	if len(palette) == 0 {
		clear(buf)
		return nil
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		px := buf[i*4 : i*4+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
	return nil
}

// BinaryPalette builds a two-entry palette for sims without their own.
func BinaryPalette(off, on color.Color) []color.RGBA {
	return []color.RGBA{toRGBA(off), toRGBA(on)}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
