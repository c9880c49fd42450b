// Package joystick turns raw analog joystick samples into cursor coordinates
// and LED brightness levels. Every function is pure.
package joystick

import (
	"joycursor/types"
	"joycursor/x/mathx"
)

// Canvas limits for the 8x8 cursor on a 128x64 display.
const (
	MaxX uint8 = 120
	MaxY uint8 = 56
)

// Slopes are computed in double precision; positions are held in single
// precision and truncated toward zero.
const span = float64(VRMax - VRMin)

// MapHorizontal maps a raw horizontal sample to a cursor column.
func MapHorizontal(raw uint32) uint8 {
	if HorizontalZone.Contains(raw) {
		return types.Center.X
	}
	x := float32((128 / span) * float64(raw))
	return uint8(mathx.Clamp(x, 0, float32(MaxX)))
}

// MapVertical maps a raw vertical sample to a cursor row. The axis is
// inverted: display rows grow downward while the stick reads higher upward.
func MapVertical(raw uint32) uint8 {
	if VerticalZone.Contains(raw) {
		return types.Center.Y
	}
	y := float32((64 / span) * (float64(VRMax) - float64(raw)))
	return uint8(mathx.Clamp(y, 0, float32(MaxY)))
}

// Map converts a raw (horizontal, vertical) pair into a cursor position.
func Map(rawH, rawV uint32) types.Position {
	return types.Position{X: MapHorizontal(rawH), Y: MapVertical(rawV)}
}

// Levels computes the red (horizontal) and blue (vertical) PWM duties.
func Levels(rawH, rawV uint32) (red, blue uint16) {
	return Level(rawH), Level(rawV)
}
