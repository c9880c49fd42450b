package ramp

import "time"

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Plot renders one intermediate frame at (x, y).
type Plot func(x, y uint8)

// Glide walks a straight line from (x0,y0) towards (x1,y1) in frames equal
// float steps, calling plot before each step and tick after it. The first
// plotted frame is the start point; the target itself is never plotted, the
// caller owns the authoritative final frame.
// frames==0 does nothing. Returns false if tick cancelled the glide.
func Glide(x0, y0, x1, y1 uint8, frames uint8, duration time.Duration, tick Tick, plot Plot) bool {
	if frames == 0 {
		return true
	}
	n := float32(frames)
	i, j := float32(x0), float32(y0)
	di := (float32(x1) - float32(x0)) / n
	dj := (float32(y1) - float32(y0)) / n
	stepDur := duration / time.Duration(frames)

	for k := uint8(0); k < frames; k++ {
		plot(toU8(i), toU8(j))
		i += di
		j += dj
		if !tick(stepDur) {
			return false
		}
	}
	return true
}

// toU8 truncates like a C cast, flooring tiny negative drift to 0.
func toU8(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f)
}
