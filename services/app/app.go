// Package app wires the board's collaborators into the button handler and
// the render loop.
package app

import (
	"context"

	"joycursor/services/control"
	"joycursor/services/display"
	"joycursor/services/hal/gpioirq"
	"joycursor/services/hal/platform"
	"joycursor/services/render"
	"joycursor/services/telemetry"
	"joycursor/x/isrring"
)

type App struct {
	State   *control.State
	Handler *control.Handler
	Router  *gpioirq.Router
	Canvas  *display.Canvas
	Sink    *telemetry.Sink
	Loop    *render.Loop

	notices isrring.Ring
	release func()
}

// New builds the app and arms the button interrupts. Options are applied to
// the render loop config before it is built.
func New(b *platform.Board, opts ...func(*render.Config)) (*App, error) {
	a := &App{
		State:  control.NewState(),
		Canvas: display.New(b.Display),
		Sink:   telemetry.NewSink(b.Console),
	}
	a.Handler = control.NewHandler(control.Config{
		State:   a.State,
		Clock:   b.Clock,
		PWM:     []control.Switch{b.Red, b.Blue},
		Green:   b.Green,
		Notices: &a.notices,
	})

	cfg := render.Config{
		Sampler:   b.Sampler,
		Red:       b.Red,
		Blue:      b.Blue,
		Modes:     a.State,
		Screen:    a.Canvas,
		Telemetry: a.Sink,
		Notices:   &a.notices,
	}
	for _, o := range opts {
		o(&cfg)
	}
	a.Loop = render.New(cfg)

	a.Router = gpioirq.New(a.Handler)
	release, err := a.Router.RegisterAll(b.Buttons)
	if err != nil {
		return nil, err
	}
	a.release = release
	return a, nil
}

// Run drives the render loop until ctx is cancelled, then disarms the
// buttons.
func (a *App) Run(ctx context.Context) error {
	defer a.release()
	return a.Loop.Run(ctx)
}

// Run builds an App on b and runs it.
func Run(ctx context.Context, b *platform.Board) error {
	a, err := New(b)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}
