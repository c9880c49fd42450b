package control

import "sync/atomic"

// Window is the global button cooldown in microseconds.
const Window uint64 = 200_000

// Debouncer is one cooldown clock shared by every button: an edge from any
// source within Window of the last accepted edge (from any source) is
// dropped. There is no queueing; a press on one button can mask a
// near-simultaneous press on another.
type Debouncer struct {
	window uint64
	last   atomic.Uint64 // µs since boot of the last accepted edge
	drops  atomic.Uint32
}

// NewDebouncer returns a debouncer with the given window (µs); 0 selects Window.
func NewDebouncer(window uint64) *Debouncer {
	if window == 0 {
		window = Window
	}
	return &Debouncer{window: window}
}

// Accept reports whether an edge at now (µs since boot) passes the guard and,
// if so, records it as the last accepted edge. The clock starts at zero, so
// edges during the first window after boot are dropped.
func (d *Debouncer) Accept(now uint64) bool {
	last := d.last.Load()
	if now < last || now-last < d.window {
		d.drops.Add(1)
		return false
	}
	if !d.last.CompareAndSwap(last, now) {
		d.drops.Add(1)
		return false
	}
	return true
}

// Last is the timestamp of the last accepted edge.
func (d *Debouncer) Last() uint64 { return d.last.Load() }

// Drops counts edges rejected by the guard.
func (d *Debouncer) Drops() uint32 { return d.drops.Load() }
