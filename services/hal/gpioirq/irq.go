// Package gpioirq wires button pins to an edge handler. Handlers are built
// once at registration; the IRQ path itself only reads a closure and calls
// the target.
package gpioirq

import (
	"sync"
	"sync/atomic"

	"joycursor/services/hal/halcore"
	"joycursor/types"
)

// Target receives edges in interrupt context.
type Target interface {
	Edge(b types.Button)
}

// Input describes one button line.
type Input struct {
	Button types.Button
	Pin    halcore.IRQPin
	Edge   halcore.Edge
	Pull   halcore.Pull
}

type Router struct {
	target Target

	mu     sync.Mutex
	inputs map[types.Button]halcore.IRQPin

	fired atomic.Uint32 // raw IRQ count, before debouncing
}

func New(target Target) *Router {
	return &Router{
		target: target,
		inputs: map[types.Button]halcore.IRQPin{},
	}
}

// Register configures in.Pin as an input and installs its IRQ. The returned
// func clears the IRQ.
func (r *Router) Register(in Input) (func(), error) {
	if in.Edge == halcore.EdgeNone {
		return func() {}, nil
	}
	if err := in.Pin.ConfigureInput(in.Pull); err != nil {
		return nil, err
	}

	b := in.Button
	handler := func() {
		r.fired.Add(1)
		r.target.Edge(b)
	}
	if err := in.Pin.SetIRQ(in.Edge, handler); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.inputs[b] = in.Pin
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		if p, ok := r.inputs[b]; ok {
			_ = p.ClearIRQ()
			delete(r.inputs, b)
		}
		r.mu.Unlock()
	}, nil
}

// RegisterAll registers every input, undoing earlier ones on failure.
func (r *Router) RegisterAll(ins []Input) (func(), error) {
	var cancels []func()
	undo := func() {
		for _, c := range cancels {
			c()
		}
	}
	for _, in := range ins {
		c, err := r.Register(in)
		if err != nil {
			undo()
			return nil, err
		}
		cancels = append(cancels, c)
	}
	return undo, nil
}

// Fired counts IRQs delivered to the target.
func (r *Router) Fired() uint32 { return r.fired.Load() }
