// Package display renders the cursor scene on a monochrome panel. It speaks
// to any tinygo.org/x/drivers Displayer: the SSD1306 on hardware, Mono on
// host builds.
package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Canvas geometry of the target panel.
const (
	Width  = 128
	Height = 64
)

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

// Canvas implements the draw commands the render loop issues.
type Canvas struct {
	d         drivers.Displayer
	w, h      int16
	flushErrs uint32
}

func New(d drivers.Displayer) *Canvas {
	w, h := d.Size()
	return &Canvas{d: d, w: w, h: h}
}

func colour(on bool) color.RGBA {
	if on {
		return white
	}
	return black
}

// Fill sets every pixel to on.
func (c *Canvas) Fill(on bool) {
	if !on {
		if cl, ok := c.d.(interface{ ClearBuffer() }); ok {
			cl.ClearBuffer()
			return
		}
	}
	col := colour(on)
	for y := int16(0); y < c.h; y++ {
		for x := int16(0); x < c.w; x++ {
			c.d.SetPixel(x, y, col)
		}
	}
}

// DrawGlyph draws r from CursorFont with its top-left corner at (x, y).
func (c *Canvas) DrawGlyph(r rune, x, y uint8) {
	tinyfont.DrawChar(c.d, CursorFont, int16(x), int16(y)+GlyphSize-1, r, white)
}

// Label writes text in a small proportional font; y is the baseline.
func (c *Canvas) Label(x, y int16, text string) {
	tinyfont.WriteLine(c.d, &proggy.TinySZ8pt7b, x, y, text, white)
}

// Flush sends the buffer to the panel. Failures are counted; the next frame
// simply tries again.
func (c *Canvas) Flush() error {
	err := c.d.Display()
	if err != nil {
		c.flushErrs++
	}
	return err
}

// FlushErrors counts failed Flush calls.
func (c *Canvas) FlushErrors() uint32 { return c.flushErrs }
