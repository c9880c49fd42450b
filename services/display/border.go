package display

// Border styles selectable by the joystick button.
const (
	BorderSolid uint8 = iota
	BorderDashed
	BorderDotted
	BorderDouble
	BorderThick
)

// DrawBorder strokes a w x h frame at (x, y) in the given style. on is the
// pixel colour. Out-of-range styles wrap.
func (c *Canvas) DrawBorder(x, y, w, h int16, on bool, style uint8) {
	switch style % 5 {
	case BorderSolid:
		c.stroke(x, y, w, h, on, solid)
	case BorderDashed:
		c.stroke(x, y, w, h, on, dashed)
	case BorderDotted:
		c.stroke(x, y, w, h, on, dotted)
	case BorderDouble:
		c.stroke(x, y, w, h, on, solid)
		c.stroke(x+2, y+2, w-4, h-4, on, solid)
	case BorderThick:
		for i := int16(0); i < 3; i++ {
			c.stroke(x+i, y+i, w-2*i, h-2*i, on, solid)
		}
	}
}

func solid(int16) bool    { return true }
func dashed(i int16) bool { return (i/4)%2 == 0 }
func dotted(i int16) bool { return i%3 == 0 }

// stroke walks the rectangle outline, lighting positions where pat(i) holds.
// i restarts at each edge so every corner is drawn.
func (c *Canvas) stroke(x, y, w, h int16, on bool, pat func(int16) bool) {
	if w <= 0 || h <= 0 {
		return
	}
	col := colour(on)
	x1, y1 := x+w-1, y+h-1
	for i := int16(0); i < w; i++ {
		if pat(i) {
			c.d.SetPixel(x+i, y, col)
			c.d.SetPixel(x+i, y1, col)
		}
	}
	for i := int16(0); i < h; i++ {
		if pat(i) {
			c.d.SetPixel(x, y+i, col)
			c.d.SetPixel(x1, y+i, col)
		}
	}
}
