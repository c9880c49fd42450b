package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// GlyphSize is the cell size of CursorFont in pixels.
const GlyphSize = 8

// CursorFont is a tiny 8x8 bitmap font carrying the cursor glyph and a few
// markers. Rows are top to bottom, bit 7 is the leftmost pixel. The y passed
// to tinyfont is the baseline, i.e. the bottom row of the cell.
//
// Concurrent access is not safe due to internal glyph reuse.
var CursorFont tinyfont.Fonter = &font8x8{}

var glyphs8x8 = map[rune][GlyphSize]byte{
	'*': {0x00, 0x7E, 0x7E, 0x7E, 0x7E, 0x7E, 0x7E, 0x00}, // cursor block
	'+': {0x00, 0x18, 0x18, 0x7E, 0x7E, 0x18, 0x18, 0x00},
	'o': {0x00, 0x3C, 0x66, 0x42, 0x42, 0x66, 0x3C, 0x00},
	'x': {0x00, 0x42, 0x24, 0x18, 0x18, 0x24, 0x42, 0x00},
}

// Unknown runes draw a hollow box.
var missing8x8 = [GlyphSize]byte{0xFF, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0xFF}

type font8x8 struct {
	g glyph8x8
}

type glyph8x8 struct {
	r    rune
	bits [GlyphSize]byte
}

func (g *glyph8x8) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	top := y - (GlyphSize - 1)
	for row := int16(0); row < GlyphSize; row++ {
		b := g.bits[row]
		for col := int16(0); col < GlyphSize; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}
			display.SetPixel(x+col, top+row, c)
		}
	}
}

func (g *glyph8x8) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    GlyphSize,
		Height:   GlyphSize,
		XAdvance: GlyphSize,
		XOffset:  0,
		YOffset:  -(GlyphSize - 1),
	}
}

func (f *font8x8) GetYAdvance() uint8 { return GlyphSize }

func (f *font8x8) GetGlyph(r rune) tinyfont.Glypher {
	bits, ok := glyphs8x8[r]
	if !ok {
		bits = missing8x8
	}
	f.g.r, f.g.bits = r, bits
	return &f.g
}
