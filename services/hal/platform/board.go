// Package platform assembles the hardware collaborators for the selected
// target: real peripherals on rp2040, fakes on host builds.
package platform

import (
	"io"

	"tinygo.org/x/drivers"

	"joycursor/errcode"
	"joycursor/services/hal/gpioirq"
	"joycursor/services/hal/halcore"
	"joycursor/types"
	"joycursor/x/timex"
)

// Wiring (GP numbers) and operating parameters. These are fixed for the
// board; there is no runtime configuration.
const (
	PinVertical   = 26 // ADC0
	PinHorizontal = 27 // ADC1

	PinRed   = 13 // PWM6B
	PinBlue  = 12 // PWM6A
	PinGreen = 11

	PinButtonA  = 5
	PinButtonB  = 6
	PinJoyPress = 22

	PinSDA      = 14 // i2c1
	PinSCL      = 15
	I2CHz       = 400_000
	DisplayAddr = 0x3C

	PinUARTTX   = 0
	PinUARTRX   = 1
	ConsoleBaud = 115200

	PWMPeriod  = 4000
	PWMDivisor = 4.0
)

// Board is the set of collaborators the firmware core runs against.
type Board struct {
	Name    string
	Sampler halcore.Sampler
	Red     halcore.PWM
	Blue    halcore.PWM
	Green   halcore.GPIOPin
	Buttons []gpioirq.Input
	Display drivers.Displayer
	Console io.Writer
	Clock   timex.Clock
}

// buttonInputs lists the three falling-edge, pulled-up button lines.
func buttonInputs(a, b, joy halcore.IRQPin) []gpioirq.Input {
	in := func(btn types.Button, p halcore.IRQPin) gpioirq.Input {
		return gpioirq.Input{Button: btn, Pin: p, Edge: halcore.EdgeFalling, Pull: halcore.PullUp}
	}
	return []gpioirq.Input{
		in(types.ButtonA, a),
		in(types.ButtonB, b),
		in(types.ButtonJoy, joy),
	}
}

// ssd1306 control byte 0x00 (command stream) followed by NOP.
var displayNOP = []byte{0x00, 0xE3}

// probeDisplay checks the panel acknowledges its address before the driver
// is configured; the driver itself does not report write failures.
func probeDisplay(bus drivers.I2C, addr uint16) error {
	return errcode.Wrap(errcode.DisplayInit, "ssd1306", bus.Tx(addr, displayNOP, nil))
}

// setupOutputs configures both LED PWM channels and the green LED (off).
// PWM starts enabled at level 0.
func (b *Board) setupOutputs() error {
	for _, ch := range []struct {
		name string
		pwm  halcore.PWM
	}{{"red", b.Red}, {"blue", b.Blue}} {
		if err := ch.pwm.Configure(PWMPeriod, PWMDivisor); err != nil {
			return errcode.Wrap(errcode.PWMInit, ch.name, err)
		}
		ch.pwm.Set(0)
		ch.pwm.Enable(true)
	}
	if err := b.Green.ConfigureOutput(false); err != nil {
		return errcode.Wrap(errcode.UnknownPin, "green", err)
	}
	return nil
}
