//go:build !rp2040 && !rp2350

package platform

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"joycursor/errcode"
	"joycursor/services/display"
	"joycursor/services/hal/halcore"
	"joycursor/types"
	"joycursor/x/timex"
)

// Host is a Board backed by fakes, with the fakes exposed so tests and the
// simulator can drive them.
type Host struct {
	*Board

	ADC      *HostADC
	RedPWM   *HostPWM
	BluePWM  *HostPWM
	GreenPin *FakePin
	ButtonA  *FakePin
	ButtonB  *FakePin
	JoyPress *FakePin
	Panel    *display.Mono
}

// NewHost builds a host board writing console output to w (os.Stdout if nil).
// The joystick rests inside both dead zones, so the cursor starts centred.
func NewHost(w io.Writer) (*Host, error) {
	if w == nil {
		w = os.Stdout
	}
	h := &Host{
		ADC:      &HostADC{},
		RedPWM:   &HostPWM{pin: PinRed},
		BluePWM:  &HostPWM{pin: PinBlue},
		GreenPin: &FakePin{number: PinGreen},
		ButtonA:  &FakePin{number: PinButtonA},
		ButtonB:  &FakePin{number: PinButtonB},
		JoyPress: &FakePin{number: PinJoyPress},
		Panel:    display.NewMono(display.Width, display.Height),
	}
	h.ADC.SetRaw(types.AxisHorizontal, RestHorizontal)
	h.ADC.SetRaw(types.AxisVertical, RestVertical)
	h.Board = &Board{
		Name:    "host",
		Sampler: h.ADC,
		Red:     h.RedPWM,
		Blue:    h.BluePWM,
		Green:   h.GreenPin,
		Buttons: buttonInputs(h.ButtonA, h.ButtonB, h.JoyPress),
		Display: h.Panel,
		Console: w,
		Clock:   timex.Monotonic{},
	}
	if err := h.setupOutputs(); err != nil {
		return nil, err
	}
	return h, nil
}

// Open brings up the host board on stdout.
func Open() (*Board, error) {
	h, err := NewHost(nil)
	if err != nil {
		return nil, err
	}
	return h.Board, nil
}

// ----------------------------- ADC (host) ------------------------------------

// Resting samples of the simulated stick. The vertical dead zone is narrower
// than the horizontal one and 2049 lies outside it (row 32), so the vertical
// rest sits in the middle of [1850,2000].
const (
	RestHorizontal = 2049
	RestVertical   = 1925
)

// HostADC serves raw values set by the test or simulator.
type HostADC struct {
	sel atomic.Uint32
	raw [2]atomic.Uint32
}

func (a *HostADC) Select(ch uint8) { a.sel.Store(uint32(ch)) }

func (a *HostADC) Read() uint16 {
	ch := a.sel.Load()
	if ch >= uint32(len(a.raw)) {
		return 0
	}
	return uint16(a.raw[ch].Load())
}

// SetRaw sets the 12-bit sample returned for axis.
func (a *HostADC) SetRaw(axis types.Axis, v uint16) {
	if int(axis) < len(a.raw) {
		a.raw[axis].Store(uint32(v & 0x0FFF))
	}
}

// ----------------------------- PWM (host) ------------------------------------

// HostPWM records the logical level and enable state, and the last value
// written to the (simulated) output.
type HostPWM struct {
	pin    int
	period atomic.Uint32
	out    atomic.Uint32

	pwmState
}

func (p *HostPWM) Configure(period uint16, divisor float32) error {
	if period == 0 || divisor < 1 {
		return errcode.InvalidParams
	}
	p.period.Store(uint32(period))
	return nil
}

func (p *HostPWM) Set(level uint16) {
	if top := uint16(p.period.Load()); level > top {
		level = top
	}
	p.level.Store(uint32(level))
	p.drive(p)
}

func (p *HostPWM) Enable(on bool) {
	p.enabled.Store(on)
	p.drive(p)
}

func (p *HostPWM) writeHW(level uint32) { p.out.Store(level) }

func (p *HostPWM) Level() uint16 { return uint16(p.level.Load()) }
func (p *HostPWM) Enabled() bool { return p.enabled.Load() }
func (p *HostPWM) Pin() int      { return p.pin }

// Duty is what the pin drives: the level while enabled, else 0.
func (p *HostPWM) Duty() uint16 { return uint16(p.out.Load()) }

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements IRQPin. Level changes that match the configured edge
// call the handler synchronously, the way a pin interrupt preempts.
type FakePin struct {
	mu      sync.Mutex
	number  int
	level   bool
	modeOut bool
	irqEdge halcore.Edge
	irqFunc func()
}

func (p *FakePin) ConfigureInput(pull halcore.Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.level = pull == halcore.PullUp
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	edge := edgeFrom(p.level, level)
	p.level = level
	irq := p.irqFunc
	want := irqWanted(p.irqEdge, edge)
	p.mu.Unlock()
	if want && irq != nil {
		irq()
	}
}

func (p *FakePin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *FakePin) Toggle() { p.Set(!p.Get()) }

func (p *FakePin) Number() int { return p.number }

// Output reports whether the pin was configured as an output.
func (p *FakePin) Output() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.modeOut
}

// Press pulls an idle-high button low and releases it.
func (p *FakePin) Press() {
	p.Set(false)
	p.Set(true)
}

func (p *FakePin) SetIRQ(edge halcore.Edge, handler func()) error {
	p.mu.Lock()
	p.irqEdge = edge
	p.irqFunc = handler
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ClearIRQ() error {
	p.mu.Lock()
	p.irqEdge = halcore.EdgeNone
	p.irqFunc = nil
	p.mu.Unlock()
	return nil
}

func edgeFrom(old, new bool) halcore.Edge {
	switch {
	case !old && new:
		return halcore.EdgeRising
	case old && !new:
		return halcore.EdgeFalling
	default:
		return halcore.EdgeNone
	}
}

func irqWanted(cfg, seen halcore.Edge) bool {
	if seen == halcore.EdgeNone {
		return false
	}
	if cfg == halcore.EdgeBoth {
		return true
	}
	return cfg == seen
}
