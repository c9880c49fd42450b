package types

// ------------------------
// Joystick samples and cursor
// ------------------------

// Axis selects one analog channel of the joystick.
type Axis uint8

const (
	AxisVertical   Axis = 0 // ADC channel 0 (GP26)
	AxisHorizontal Axis = 1 // ADC channel 1 (GP27)
)

// Position is the cursor's top-left corner on the 128x64 canvas.
type Position struct {
	X uint8 `json:"x"` // 0..120
	Y uint8 `json:"y"` // 0..56
}

// Center is the resting cursor position.
var Center = Position{X: 60, Y: 28}

// Levels are the PWM duties driven by axis deflection plus the green LED state.
type Levels struct {
	Red   uint16 `json:"red"`  // from horizontal deflection
	Blue  uint16 `json:"blue"` // from vertical deflection
	Green bool   `json:"green"`
}

// Report is one loop iteration's telemetry.
type Report struct {
	RawH uint16   `json:"raw_h"`
	RawV uint16   `json:"raw_v"`
	Pos  Position `json:"pos"`
	LED  Levels   `json:"led"`
}

// ------------------------
// Buttons and modes
// ------------------------

// Button identifies one of the interrupt-driven inputs.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonA           // toggles PWM output
	ButtonB           // toggles animation
	ButtonJoy         // joystick press: green LED + border style
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonJoy:
		return "joy"
	default:
		return "none"
	}
}

// BorderStyles is the number of selectable border patterns.
const BorderStyles = 5

// Modes is a point-in-time copy of the shared control flags.
type Modes struct {
	PWM     bool  `json:"pwm"`
	Animate bool  `json:"animate"`
	Border  uint8 `json:"border"` // 0..BorderStyles-1
	Green   bool  `json:"green"`
}
