// Package halcore declares the narrow hardware collaborators the firmware
// core talks to. Platform packages provide the implementations.
package halcore

// ---- GPIO abstractions ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

type GPIOPin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Toggle()
	Number() int
}

// Edge selection for IRQ.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

// IRQPin extends GPIOPin with interrupts. The handler runs in interrupt
// context on MCU builds: it must not block or allocate.
type IRQPin interface {
	GPIOPin
	SetIRQ(edge Edge, handler func()) error
	ClearIRQ() error
}

func EdgeToString(e Edge) string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	default:
		return "none"
	}
}

// ---- Analog ----

// Sampler is a multiplexed 12-bit ADC: select a channel, then read it.
type Sampler interface {
	Select(ch uint8)
	Read() uint16
}

// ---- PWM ----

// PWM is one LED channel. Level is logical, 0..period.
//
// Implementations keep level and enable state in atomics: Enable is called
// from interrupt context while the foreground loop calls Set.
type PWM interface {
	Configure(period uint16, divisor float32) error
	Set(level uint16)
	Enable(on bool)
	Level() uint16
	Enabled() bool
}
