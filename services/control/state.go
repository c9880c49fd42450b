package control

import (
	"sync/atomic"

	"joycursor/types"
)

// State holds the mode flags shared between the button IRQ handler (the only
// writer) and the render loop (reader). Every field is a single-word atomic;
// nothing here may take a lock.
type State struct {
	pwm     atomic.Bool
	animate atomic.Bool
	border  atomic.Uint32
	green   atomic.Bool
}

// NewState returns the power-on state: PWM on, animation off, border 0,
// green LED off.
func NewState() *State {
	s := &State{}
	s.pwm.Store(true)
	return s
}

func (s *State) PWMEnabled() bool       { return s.pwm.Load() }
func (s *State) AnimationEnabled() bool { return s.animate.Load() }
func (s *State) BorderStyle() uint8     { return uint8(s.border.Load()) }
func (s *State) GreenOn() bool          { return s.green.Load() }

// Snapshot copies the flags. Fields are read independently; an IRQ landing
// mid-snapshot is visible in some fields and not others.
func (s *State) Snapshot() types.Modes {
	return types.Modes{
		PWM:     s.PWMEnabled(),
		Animate: s.AnimationEnabled(),
		Border:  s.BorderStyle(),
		Green:   s.GreenOn(),
	}
}

func (s *State) togglePWM() bool     { return toggle(&s.pwm) }
func (s *State) toggleAnimate() bool { return toggle(&s.animate) }
func (s *State) toggleGreen() bool   { return toggle(&s.green) }

func (s *State) advanceBorder() uint8 {
	for {
		old := s.border.Load()
		next := (old + 1) % types.BorderStyles
		if s.border.CompareAndSwap(old, next) {
			return uint8(next)
		}
	}
}

// toggle flips b and returns the new value.
func toggle(b *atomic.Bool) bool {
	for {
		old := b.Load()
		if b.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
