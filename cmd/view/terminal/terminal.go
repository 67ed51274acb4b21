// Package terminal renders an image inside the terminal using colored
// half-block cells.
package terminal

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	padTop  = 2
	padLeft = 1
)

// Each cell draws two vertically stacked pixels with this rune, the
// foreground paints the top pixel and the background the bottom one.
const halfBlock = '▀'

// Viewer represents the terminal image viewer and all its state.
type Viewer struct {
	screen tcell.Screen
	style  tcell.Style
	title  string
	load   func() (image.Image, error)
	img    image.Image
}

// New constructs a viewer and renders the first frame. The load
// function is called again whenever the image is reloaded.
func New(title string, load func() (image.Image, error)) (*Viewer, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}

	style := tcell.StyleDefault
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	v := Viewer{
		screen: screen,
		style:  style,
		title:  title,
		load:   load,
	}

	if err := v.reload(); err != nil {
		v.screen.Fini()
		return nil, err
	}

	return &v, nil
}

// Shutdown tears down the viewer.
func (v *Viewer) Shutdown() {
	v.screen.Fini()
}

func (v *Viewer) reload() error {
	img, err := v.load()
	if err != nil {
		return fmt.Errorf("load image: %w", err)
	}

	v.img = img
	v.draw()

	return nil
}

func (v *Viewer) draw() {
	v.screen.Clear()

	v.print(padLeft, 0, v.title)
	v.print(padLeft, 1, "<r> reload   <q> quit")

	screenWidth, screenHeight := v.screen.Size()

	// Every cell carries two pixel rows, so twice the rows fit.
	maxW := screenWidth - padLeft*2
	maxH := (screenHeight - padTop - 1) * 2
	if maxW < 1 || maxH < 2 {
		v.screen.Show()
		return
	}

	grid := downsample(v.img, maxW, maxH)

	for cy := 0; cy+1 < len(grid); cy += 2 {
		for cx := range grid[cy] {
			top := grid[cy][cx]
			bot := grid[cy+1][cx]

			style := v.style.
				Foreground(tcell.NewRGBColor(int32(top.r), int32(top.g), int32(top.b))).
				Background(tcell.NewRGBColor(int32(bot.r), int32(bot.g), int32(bot.b)))

			v.screen.SetContent(cx+padLeft, cy/2+padTop, halfBlock, nil, style)
		}
	}

	v.screen.Show()
}

func (v *Viewer) print(x, y int, str string) {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		v.screen.SetContent(x, y, c, comb, v.style)
		x += w
	}
	v.screen.Show()
}
