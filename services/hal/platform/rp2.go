//go:build rp2040 || rp2350

package platform

import (
	"io"
	"machine"
	"os"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ssd1306"

	"joycursor/errcode"
	"joycursor/services/display"
	"joycursor/services/hal/halcore"
	"joycursor/x/mathx"
	"joycursor/x/timex"
)

// Open brings up the ADC, LED PWM, buttons, display and console.
func Open() (*Board, error) {
	b := &Board{
		Name:    "pico",
		Sampler: newSampler(),
		Red:     newPWM(PinRed),
		Blue:    newPWM(PinBlue),
		Green:   &rp2Pin{p: machine.Pin(PinGreen), n: PinGreen},
		Buttons: buttonInputs(
			&rp2Pin{p: machine.Pin(PinButtonA), n: PinButtonA},
			&rp2Pin{p: machine.Pin(PinButtonB), n: PinButtonB},
			&rp2Pin{p: machine.Pin(PinJoyPress), n: PinJoyPress},
		),
		Console: console(),
		Clock:   timex.Monotonic{},
	}
	if err := b.setupOutputs(); err != nil {
		return nil, err
	}
	d, err := openDisplay()
	if err != nil {
		return nil, err
	}
	b.Display = d
	return b, nil
}

// ---- ADC ----

type rp2Sampler struct {
	ch  [2]machine.ADC
	sel uint8
}

func newSampler() *rp2Sampler {
	machine.InitADC()
	s := &rp2Sampler{ch: [2]machine.ADC{
		{Pin: machine.Pin(PinVertical)},
		{Pin: machine.Pin(PinHorizontal)},
	}}
	for i := range s.ch {
		s.ch[i].Configure(machine.ADCConfig{})
	}
	return s
}

func (s *rp2Sampler) Select(ch uint8) {
	if int(ch) < len(s.ch) {
		s.sel = ch
	}
}

// Read returns a 12-bit sample; machine.ADC scales to 16 bits.
func (s *rp2Sampler) Read() uint16 { return s.ch[s.sel].Get() >> 4 }

// ---- PWM ----

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// rp2PWM keeps level and enable state in atomics so Enable can run from a
// pin interrupt while the loop calls Set. Disabled means driving 0.
type rp2PWM struct {
	pin   int
	ctrl  pwmCtrl
	ch    uint8
	top   uint32 // logical period
	hwTop uint32 // controller Top() after Configure

	pwmState
}

func newPWM(pin int) *rp2PWM {
	return &rp2PWM{pin: pin, ctrl: pwmGroupBySlice(uint8(pin/2) % 8)}
}

func (p *rp2PWM) Configure(period uint16, divisor float32) error {
	if period == 0 {
		return errcode.InvalidParams
	}
	ns := timex.PWMPeriod(period, divisor, machine.CPUFrequency())
	if err := p.ctrl.Configure(machine.PWMConfig{Period: ns}); err != nil {
		return err
	}
	ch, err := p.ctrl.Channel(machine.Pin(p.pin))
	if err != nil {
		return errcode.Wrap(errcode.UnknownPin, "pwm", err)
	}
	p.ch = ch
	p.top = uint32(period)
	p.hwTop = p.ctrl.Top()
	p.apply()
	return nil
}

func (p *rp2PWM) Set(level uint16) {
	p.level.Store(mathx.Min(uint32(level), p.top))
	p.apply()
}

func (p *rp2PWM) Enable(on bool) {
	p.enabled.Store(on)
	p.apply()
}

func (p *rp2PWM) Level() uint16 { return uint16(p.level.Load()) }
func (p *rp2PWM) Enabled() bool { return p.enabled.Load() }

func (p *rp2PWM) apply() {
	if p.hwTop == 0 {
		return
	}
	p.drive(p)
}

func (p *rp2PWM) writeHW(level uint32) {
	p.ctrl.Set(p.ch, mathx.ScaleU32(level, p.top, p.hwTop))
}

// ---- GPIO (includes IRQ support) ----

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull halcore.Pull) error {
	var mode machine.PinMode
	switch pull {
	case halcore.PullUp:
		mode = machine.PinInputPullup
	case halcore.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }

func (r *rp2Pin) Toggle() {
	if r.p.Get() {
		r.p.Low()
	} else {
		r.p.High()
	}
}

func (r *rp2Pin) Number() int { return r.n }

func (r *rp2Pin) SetIRQ(edge halcore.Edge, handler func()) error {
	return r.p.SetInterrupt(toPinChange(edge), func(machine.Pin) { handler() })
}

func (r *rp2Pin) ClearIRQ() error {
	var zero machine.PinChange
	return r.p.SetInterrupt(zero, nil)
}

func toPinChange(e halcore.Edge) machine.PinChange {
	switch e {
	case halcore.EdgeRising:
		return machine.PinRising
	case halcore.EdgeFalling:
		return machine.PinFalling
	case halcore.EdgeBoth:
		return machine.PinToggle
	default:
		var zero machine.PinChange
		return zero
	}
}

// ---- Display ----

func openDisplay() (*ssd1306.Device, error) {
	bus := machine.I2C1
	if err := bus.Configure(machine.I2CConfig{
		Frequency: I2CHz,
		SDA:       machine.Pin(PinSDA),
		SCL:       machine.Pin(PinSCL),
	}); err != nil {
		return nil, errcode.Wrap(errcode.BusInit, "i2c1", err)
	}
	if err := probeDisplay(bus, DisplayAddr); err != nil {
		return nil, err
	}
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address: DisplayAddr,
		Width:   display.Width,
		Height:  display.Height,
	})
	dev.ClearDisplay()
	return dev, nil
}

// ---- Console ----

// console mirrors output to USB CDC and UART0. If UART0 will not configure
// the console is USB only.
func console() io.Writer {
	u := uartx.UART0
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: ConsoleBaud,
		TX:       machine.Pin(PinUARTTX),
		RX:       machine.Pin(PinUARTRX),
	}); err != nil {
		println("uart0:", errcode.Wrap(errcode.BusInit, "uart0", err).Error())
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, u)
}
