// Package isrring is a fixed-size single-producer, single-consumer byte ring
// safe to write from interrupt context: no allocation, no locks, no channels.
package isrring

import "sync/atomic"

// Size is the ring capacity in bytes. Must be a power of two.
const Size = 16

const mask = Size - 1

// Ring carries one-byte codes from a producer (typically an IRQ handler) to a
// single foreground consumer. The zero value is ready to use.
type Ring struct {
	buf   [Size]byte
	rd    atomic.Uint32 // consumer index (monotonic)
	wr    atomic.Uint32 // producer index (monotonic)
	drops atomic.Uint32
}

// Put appends b. It never blocks; a full ring drops b and counts it.
func (r *Ring) Put(b byte) bool {
	wr := r.wr.Load()
	if wr-r.rd.Load() >= Size {
		r.drops.Add(1)
		return false
	}
	r.buf[wr&mask] = b
	r.wr.Store(wr + 1) // release
	return true
}

// Get removes the oldest byte.
func (r *Ring) Get() (byte, bool) {
	rd := r.rd.Load()
	if r.wr.Load() == rd { // acquire
		return 0, false
	}
	b := r.buf[rd&mask]
	r.rd.Store(rd + 1)
	return b, true
}

// Drain hands every queued byte to fn in order and returns how many it saw.
func (r *Ring) Drain(fn func(byte)) int {
	n := 0
	for {
		b, ok := r.Get()
		if !ok {
			return n
		}
		fn(b)
		n++
	}
}

// Len is the number of queued bytes.
func (r *Ring) Len() int { return int(r.wr.Load() - r.rd.Load()) }

// Drops counts bytes rejected because the ring was full.
func (r *Ring) Drops() uint32 { return r.drops.Load() }
