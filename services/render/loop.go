// Package render runs the foreground loop: sample the joystick, drive the
// LEDs, draw the cursor and throttle.
package render

import (
	"context"
	"time"

	"joycursor/services/control"
	"joycursor/services/display"
	"joycursor/services/hal/halcore"
	"joycursor/services/joystick"
	"joycursor/types"
	"joycursor/x/isrring"
	"joycursor/x/ramp"
	"joycursor/x/timex"
)

// Screen is the draw surface. display.Canvas implements it.
type Screen interface {
	Fill(on bool)
	DrawBorder(x, y, w, h int16, on bool, style uint8)
	DrawGlyph(r rune, x, y uint8)
	Flush() error
}

// Dimmer takes a logical LED level.
type Dimmer interface {
	Set(level uint16)
}

// Modes exposes the flags mutated by the button handler.
type Modes interface {
	Snapshot() types.Modes
}

// Reporter receives per-iteration telemetry and drained notices.
type Reporter interface {
	Report(r types.Report)
	Notice(msg string)
}

// SleepFunc blocks for d; false means the loop should stop.
type SleepFunc func(ctx context.Context, d time.Duration) bool

type Config struct {
	Sampler   halcore.Sampler
	Red, Blue Dimmer
	Modes     Modes
	Screen    Screen
	Telemetry Reporter      // optional
	Notices   *isrring.Ring // optional

	Frames uint8         // animation sub-frames; default 10
	Glide  time.Duration // whole glide; default 100ms
	Idle   time.Duration // per-iteration delay; default 400ms
	Static time.Duration // extra delay when not animating; default 100ms
	Glyph  rune          // default '*'
	Sleep  SleepFunc     // default timex.Sleep
}

// Loop is single-threaded; only Step/Run touch it.
type Loop struct {
	cfg  Config
	prev types.Position

	iterations uint32
	frames     uint32
}

func New(c Config) *Loop {
	if c.Frames == 0 {
		c.Frames = 10
	}
	if c.Glide <= 0 {
		c.Glide = 100 * time.Millisecond
	}
	if c.Idle <= 0 {
		c.Idle = 400 * time.Millisecond
	}
	if c.Static <= 0 {
		c.Static = 100 * time.Millisecond
	}
	if c.Glyph == 0 {
		c.Glyph = '*'
	}
	if c.Sleep == nil {
		c.Sleep = timex.Sleep
	}
	return &Loop{cfg: c, prev: types.Center}
}

// Run steps until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	for l.Step(ctx) {
	}
	return ctx.Err()
}

// Step runs one iteration and reports whether to keep going.
func (l *Loop) Step(ctx context.Context) bool {
	v := l.sample(types.AxisVertical)
	h := l.sample(types.AxisHorizontal)

	pos := joystick.Map(uint32(h), uint32(v))
	red, blue := joystick.Levels(uint32(h), uint32(v))
	l.cfg.Red.Set(red)
	l.cfg.Blue.Set(blue)

	// One snapshot per iteration; a toggle mid-glide applies next time round.
	m := l.cfg.Modes.Snapshot()

	t := l.cfg.Telemetry
	if t != nil {
		t.Report(types.Report{
			RawH: h, RawV: v, Pos: pos,
			LED: types.Levels{Red: red, Blue: blue, Green: m.Green},
		})
	}
	if l.cfg.Notices != nil {
		l.cfg.Notices.Drain(func(code byte) {
			if t != nil {
				t.Notice(control.NoticeText(code))
			}
		})
	}

	if m.Animate && pos != l.prev {
		tick := func(d time.Duration) bool { return l.cfg.Sleep(ctx, d) }
		plot := func(x, y uint8) { l.frame(x, y, m.Border) }
		if !ramp.Glide(l.prev.X, l.prev.Y, pos.X, pos.Y, l.cfg.Frames, l.cfg.Glide, tick, plot) {
			return false
		}
	}
	l.frame(pos.X, pos.Y, m.Border)
	l.prev = pos
	l.iterations++

	d := l.cfg.Idle
	if !m.Animate {
		d += l.cfg.Static
	}
	return l.cfg.Sleep(ctx, d)
}

func (l *Loop) sample(a types.Axis) uint16 {
	l.cfg.Sampler.Select(uint8(a))
	return l.cfg.Sampler.Read()
}

func (l *Loop) frame(x, y, style uint8) {
	s := l.cfg.Screen
	s.Fill(false)
	s.DrawBorder(0, 0, display.Width, display.Height, true, style)
	s.DrawGlyph(l.cfg.Glyph, x, y)
	// Failures are counted by the screen; the next frame simply tries again.
	_ = s.Flush()
	l.frames++
}

// Position is the last authoritative cursor position.
func (l *Loop) Position() types.Position { return l.prev }

// Iterations counts completed steps.
func (l *Loop) Iterations() uint32 { return l.iterations }

// Frames counts flushed frames, glide frames included.
func (l *Loop) Frames() uint32 { return l.frames }
