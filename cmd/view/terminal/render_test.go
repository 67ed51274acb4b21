package terminal

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsampleSize(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		maxW, maxH int
	}{
		{name: "shrink square", srcW: 200, srcH: 200, maxW: 50, maxH: 40},
		{name: "wide image", srcW: 400, srcH: 100, maxW: 80, maxH: 40},
		{name: "tall image", srcW: 100, srcH: 400, maxW: 80, maxH: 40},
		{name: "tiny image", srcW: 2, srcH: 2, maxW: 80, maxH: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solidImage(tt.srcW, tt.srcH, color.RGBA{R: 10, G: 20, B: 30, A: 255})

			grid := downsample(img, tt.maxW, tt.maxH)

			if len(grid) == 0 {
				t.Fatal("empty grid")
			}
			if len(grid) > tt.maxH {
				t.Errorf("rows = %d, want <= %d", len(grid), tt.maxH)
			}
			if len(grid)%2 != 0 {
				t.Errorf("rows = %d, want an even count", len(grid))
			}
			if len(grid[0]) > tt.maxW {
				t.Errorf("cols = %d, want <= %d", len(grid[0]), tt.maxW)
			}
		})
	}
}

func TestDownsampleColors(t *testing.T) {
	img := solidImage(100, 100, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	grid := downsample(img, 20, 20)

	for y := range grid {
		for x := range grid[y] {
			p := grid[y][x]
			if p.r != 200 || p.g != 100 || p.b != 50 {
				t.Fatalf("pixel (%d,%d) = %+v, want {200 100 50}", x, y, p)
			}
		}
	}
}

func TestDownsampleAveraging(t *testing.T) {
	// Left half black, right half white. A 2 column grid must come out
	// with a dark and a light column.
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			c := color.RGBA{A: 255}
			if x >= 50 {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}

	grid := downsample(img, 2, 50)

	if len(grid[0]) != 2 {
		t.Fatalf("cols = %d, want 2", len(grid[0]))
	}
	if left := grid[0][0]; left.r > 10 {
		t.Errorf("left column = %+v, want near black", left)
	}
	if right := grid[0][1]; right.r < 245 {
		t.Errorf("right column = %+v, want near white", right)
	}
}
