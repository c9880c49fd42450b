// cmd/boardtest/main.go
package main

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"joycursor/services/display"
	"joycursor/services/hal/gpioirq"
	"joycursor/services/hal/halcore"
	"joycursor/services/hal/platform"
	"joycursor/services/joystick"
	"joycursor/types"
)

// ---------- Configuration ----------

const (
	stepDelay = 300 * time.Millisecond
	rampDelay = 50 * time.Millisecond
	rampStep  = 250
	dwell     = 2 * time.Second
	adcReads  = 5

	// Cycles: 0 = loop forever
	cyclesToRun = 0
)

// ---------- Minimal output to the board console ----------

type out struct{ w io.Writer }

func (o *out) println(a ...any) {
	_, _ = io.WriteString(o.w, fmt.Sprintln(a...))
}

// ---------- Raw button counter (no debounce) ----------

type counter struct{ n [4]atomic.Uint32 }

func (c *counter) Edge(b types.Button) {
	if int(b) < len(c.n) {
		c.n[b].Add(1)
	}
}

func main() {
	time.Sleep(2 * time.Second)
	println("boardtest: boot")

	b, err := platform.Open()
	if err != nil {
		println("boardtest: bring-up failed:", err.Error())
		for {
			time.Sleep(time.Hour)
		}
	}
	o := &out{w: b.Console}
	o.println("boardtest:", b.Name)

	var presses counter
	if _, err := gpioirq.New(&presses).RegisterAll(b.Buttons); err != nil {
		o.println("buttons:", err)
	}
	c := display.New(b.Display)

	for cycle := 1; cyclesToRun == 0 || cycle <= cyclesToRun; cycle++ {
		o.println("---- cycle", cycle, "----")

		for s := uint8(0); s < types.BorderStyles; s++ {
			c.Fill(false)
			c.DrawBorder(0, 0, display.Width, display.Height, true, s)
			c.DrawGlyph('+', types.Center.X, types.Center.Y)
			c.Label(4, 12, fmt.Sprint("style ", s))
			if err := c.Flush(); err != nil {
				o.println("display:", err)
			}
			o.println("border style", s)
			time.Sleep(stepDelay)
		}

		for _, ch := range []struct {
			name string
			pwm  halcore.PWM
		}{{"red", b.Red}, {"blue", b.Blue}} {
			for lvl := 0; lvl <= platform.PWMPeriod; lvl += rampStep {
				ch.pwm.Set(uint16(lvl))
				time.Sleep(rampDelay)
			}
			ch.pwm.Set(0)
			o.println(ch.name, "ramp done")
		}

		b.Green.Toggle()
		o.println("green", b.Green.Get())

		for i := 0; i < adcReads; i++ {
			b.Sampler.Select(uint8(types.AxisVertical))
			v := b.Sampler.Read()
			b.Sampler.Select(uint8(types.AxisHorizontal))
			h := b.Sampler.Read()
			p := joystick.Map(uint32(h), uint32(v))
			o.println("VRX:", h, "VRY:", v, "x:", p.X, "y:", p.Y)
			time.Sleep(stepDelay)
		}

		o.println("presses A:", presses.n[types.ButtonA].Load(),
			"B:", presses.n[types.ButtonB].Load(),
			"joy:", presses.n[types.ButtonJoy].Load(),
			"flush errors:", c.FlushErrors())
		time.Sleep(dwell)
	}
}
