package timex

import (
	"context"
	"time"
)

var boot = time.Now()

// Clock reports microseconds since boot.
type Clock interface {
	Micros() uint64
}

// Monotonic is the process clock; safe to call from IRQ handlers.
type Monotonic struct{}

func (Monotonic) Micros() uint64 { return Micros() }

// Micros returns monotonic microseconds since process start.
func Micros() uint64 { return uint64(time.Since(boot) / time.Microsecond) }

// Sleep blocks for d or until ctx is done; false means cancelled.
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// PWMPeriod returns the nanosecond period of a counter wrapping at top and
// clocked at sysHz/div. Degenerate inputs yield 0.
func PWMPeriod(top uint16, div float32, sysHz uint32) uint64 {
	if sysHz == 0 || div <= 0 {
		return 0
	}
	counts := float64(div) * float64(uint32(top)+1)
	return uint64(counts * 1e9 / float64(sysHz))
}
