package main

import (
	"bytes"
	"hash/fnv"

	"github.com/fogleman/gg"
)

// generateAvatar renders a square identicon style avatar for the
// specified name. The same name and size always produce the same bytes.
func generateAvatar(name string, size int) ([]byte, error) {
	const cells = 5

	h := fnv.New64a()
	h.Write([]byte(name))
	seed := h.Sum64()

	// Pick the foreground color from the high bits of the hash. The
	// channels are kept away from pure white so the pattern stays
	// visible on the light background.
	r := float64((seed>>40)&0xff) / 255 * 0.7
	g := float64((seed>>48)&0xff) / 255 * 0.7
	b := float64((seed>>56)&0xff) / 255 * 0.7

	dc := gg.NewContext(size, size)
	dc.SetRGB(0.93, 0.93, 0.93)
	dc.Clear()

	cell := float64(size) / (cells + 2)
	radius := cell * 0.42

	// Fill a 5x5 grid mirrored around the center column so the result
	// reads as a face-like glyph.
	for row := 0; row < cells; row++ {
		for col := 0; col <= cells/2; col++ {
			bit := uint(row*(cells/2+1) + col)
			if (seed>>bit)&1 == 0 {
				continue
			}

			dc.SetRGB(r, g, b)

			x := cell*float64(col+1) + cell/2
			y := cell*float64(row+1) + cell/2
			dc.DrawCircle(x, y, radius)
			dc.Fill()

			mirror := cells - 1 - col
			if mirror != col {
				x = cell*float64(mirror+1) + cell/2
				dc.DrawCircle(x, y, radius)
				dc.Fill()
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
