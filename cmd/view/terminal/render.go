package terminal

import "image"

type pixel struct {
	r uint8
	g uint8
	b uint8
}

// downsample scales the image into a pixel grid of at most maxW by maxH
// cells by box averaging, preserving the aspect ratio. The grid always
// has an even number of rows so it can be drawn two rows per cell.
func downsample(img image.Image, maxW int, maxH int) [][]pixel {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil
	}

	// Terminal cells are roughly twice as tall as wide, which the
	// half-block rendering already corrects for, so the ratio here is
	// pixel for pixel.
	dstW := maxW
	dstH := srcH * dstW / srcW
	if dstH > maxH {
		dstH = maxH
		dstW = srcW * dstH / srcH
	}
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 2 {
		dstH = 2
	}
	if dstH%2 != 0 {
		dstH--
	}

	grid := make([][]pixel, dstH)

	for y := range grid {
		row := make([]pixel, dstW)

		y0 := bounds.Min.Y + y*srcH/dstH
		y1 := bounds.Min.Y + (y+1)*srcH/dstH
		if y1 <= y0 {
			y1 = y0 + 1
		}

		for x := range row {
			x0 := bounds.Min.X + x*srcW/dstW
			x1 := bounds.Min.X + (x+1)*srcW/dstW
			if x1 <= x0 {
				x1 = x0 + 1
			}

			var sumR, sumG, sumB, n uint64
			for py := y0; py < y1; py++ {
				for px := x0; px < x1; px++ {
					r, g, b, _ := img.At(px, py).RGBA()
					sumR += uint64(r >> 8)
					sumG += uint64(g >> 8)
					sumB += uint64(b >> 8)
					n++
				}
			}

			row[x] = pixel{
				r: uint8(sumR / n),
				g: uint8(sumG / n),
				b: uint8(sumB / n),
			}
		}

		grid[y] = row
	}

	return grid
}
