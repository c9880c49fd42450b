package display

import (
	"image/color"
	"strings"
)

// Mono is an in-memory 1bpp framebuffer with the SSD1306 page layout. It
// stands in for the panel on host builds and in tests.
type Mono struct {
	w, h   int16
	buf    []byte
	shown  []byte // copy of buf at the last Display
	frames uint32
	err    error
}

func NewMono(w, h int16) *Mono {
	n := int(w) * int(h) / 8
	return &Mono{w: w, h: h, buf: make([]byte, n), shown: make([]byte, n)}
}

func (m *Mono) Size() (int16, int16) { return m.w, m.h }

// SetPixel lights the pixel for any non-black colour.
func (m *Mono) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	i := int(x) + int(y/8)*int(m.w)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		m.buf[i] |= 1 << uint8(y%8)
	} else {
		m.buf[i] &^= 1 << uint8(y%8)
	}
}

func (m *Mono) ClearBuffer() {
	for i := range m.buf {
		m.buf[i] = 0
	}
}

// Display latches the buffer as the visible frame.
func (m *Mono) Display() error {
	if m.err != nil {
		return m.err
	}
	copy(m.shown, m.buf)
	m.frames++
	return nil
}

// FailWith makes subsequent Display calls return err.
func (m *Mono) FailWith(err error) { m.err = err }

// Frames counts successful Display calls.
func (m *Mono) Frames() uint32 { return m.frames }

// Pixel reports the drawing buffer, not the latched frame.
func (m *Mono) Pixel(x, y int16) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.buf[int(x)+int(y/8)*int(m.w)]&(1<<uint8(y%8)) != 0
}

// Shown reports the latched frame.
func (m *Mono) Shown(x, y int16) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.shown[int(x)+int(y/8)*int(m.w)]&(1<<uint8(y%8)) != 0
}

// Lit counts lit pixels in the drawing buffer.
func (m *Mono) Lit() int {
	n := 0
	for _, b := range m.buf {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

// String renders the latched frame as ASCII art, '#' for lit pixels.
func (m *Mono) String() string {
	var sb strings.Builder
	sb.Grow(int(m.w+1) * int(m.h))
	for y := int16(0); y < m.h; y++ {
		for x := int16(0); x < m.w; x++ {
			if m.Shown(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
