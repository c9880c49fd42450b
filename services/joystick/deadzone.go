package joystick

import "joycursor/x/mathx"

// Calibrated extremes of the joystick's 12-bit readings.
const (
	VRMin uint32 = 16
	VRMax uint32 = 4082
	VRMed uint32 = 2049
)

// DeadZone is an inclusive raw range treated as "no movement".
type DeadZone struct{ Lo, Hi uint32 }

// Contains reports whether raw falls inside the zone.
func (z DeadZone) Contains(raw uint32) bool { return mathx.Between(raw, z.Lo, z.Hi) }

// The vertical zone is narrower than the others. The hardware was calibrated
// that way; keep the three zones separate.
var (
	HorizontalZone = DeadZone{Lo: 1850, Hi: 2100}
	VerticalZone   = DeadZone{Lo: 1850, Hi: 2000}
	LEDZone        = DeadZone{Lo: 1850, Hi: 2100}
)

// Level converts a raw sample into a PWM duty: zero inside LEDZone, otherwise
// the distance from VRMed. The result never exceeds 4095-VRMed for 12-bit input.
func Level(raw uint32) uint16 {
	if LEDZone.Contains(raw) {
		return 0
	}
	return uint16(mathx.Min(mathx.AbsDiff(raw, VRMed), 0xFFFF))
}
