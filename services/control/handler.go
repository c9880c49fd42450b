// Package control owns the shared mode flags and the debounced button
// handler that mutates them from interrupt context.
package control

import (
	"sync/atomic"

	"joycursor/types"
	"joycursor/x/isrring"
	"joycursor/x/timex"
)

// Notice codes queued for the foreground loop to print.
const (
	NoticePWMOn      byte = 'P'
	NoticePWMOff     byte = 'p'
	NoticeAnimateOn  byte = 'A'
	NoticeAnimateOff byte = 'a'
)

// NoticeText renders a notice code as a console line.
func NoticeText(code byte) string {
	switch code {
	case NoticePWMOn:
		return "PWM ENABLED"
	case NoticePWMOff:
		return "PWM DISABLED"
	case NoticeAnimateOn:
		return "ANIMATION ENABLED"
	case NoticeAnimateOff:
		return "ANIMATION DISABLED"
	default:
		return ""
	}
}

// Switch turns an LED PWM channel on or off. It must be IRQ-safe.
type Switch interface {
	Enable(on bool)
}

// Pin is the IRQ-safe output used for the green LED.
type Pin interface {
	Set(level bool)
}

// Handler is the debounced button event handler. Edge runs in interrupt
// context: it only touches atomics, the notice ring and output pins.
type Handler struct {
	st    *State
	deb   *Debouncer
	clock timex.Clock
	pwm   []Switch
	green Pin
	notes *isrring.Ring

	accepted [4]atomic.Uint32 // per types.Button
}

// Config collects the handler's collaborators.
type Config struct {
	State     *State
	Debouncer *Debouncer // nil => NewDebouncer(Window)
	Clock     timex.Clock
	PWM       []Switch // toggled together by button A
	Green     Pin
	Notices   *isrring.Ring // optional
}

func NewHandler(c Config) *Handler {
	if c.Debouncer == nil {
		c.Debouncer = NewDebouncer(Window)
	}
	if c.Clock == nil {
		c.Clock = timex.Monotonic{}
	}
	if c.State == nil {
		c.State = NewState()
	}
	return &Handler{
		st:    c.State,
		deb:   c.Debouncer,
		clock: c.Clock,
		pwm:   c.PWM,
		green: c.Green,
		notes: c.Notices,
	}
}

// Edge handles one falling edge from button b.
func (h *Handler) Edge(b types.Button) {
	if !h.deb.Accept(h.clock.Micros()) {
		return
	}
	switch b {
	case types.ButtonA:
		on := h.st.togglePWM()
		for _, p := range h.pwm {
			p.Enable(on)
		}
		h.notify(NoticePWMOff, NoticePWMOn, on)
	case types.ButtonB:
		on := h.st.toggleAnimate()
		h.notify(NoticeAnimateOff, NoticeAnimateOn, on)
	case types.ButtonJoy:
		on := h.st.toggleGreen()
		if h.green != nil {
			h.green.Set(on)
		}
		h.st.advanceBorder()
	default:
		// Unknown sources still consume the cooldown.
		return
	}
	h.accepted[b].Add(1)
}

func (h *Handler) notify(off, on byte, state bool) {
	if h.notes == nil {
		return
	}
	if state {
		h.notes.Put(on)
	} else {
		h.notes.Put(off)
	}
}

// Accepted counts edges from b that passed the debounce guard.
func (h *Handler) Accepted(b types.Button) uint32 {
	if int(b) >= len(h.accepted) {
		return 0
	}
	return h.accepted[b].Load()
}

// Dropped counts edges rejected by the debounce guard.
func (h *Handler) Dropped() uint32 { return h.deb.Drops() }

// State exposes the shared flags for readers.
func (h *Handler) State() *State { return h.st }
