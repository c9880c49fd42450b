package platform

import "sync/atomic"

// hwWriter drives one PWM output with an effective logical level.
type hwWriter interface {
	writeHW(level uint32)
}

// pwmState is the level/enable pair of one LED channel. The loop calls Set
// while button IRQs call Enable, so both live in atomics.
type pwmState struct {
	level   atomic.Uint32
	enabled atomic.Bool
}

// drive writes the effective level (0 while disabled). An Enable landing
// between the read and the write is caught by re-reading the flag.
func (s *pwmState) drive(w hwWriter) {
	for {
		on := s.enabled.Load()
		var lvl uint32
		if on {
			lvl = s.level.Load()
		}
		w.writeHW(lvl)
		if s.enabled.Load() == on {
			return
		}
	}
}
