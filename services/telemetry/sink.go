// Package telemetry writes the per-iteration console report and decodes it
// again on the host side.
package telemetry

import (
	"io"
	"strconv"

	"joycursor/types"
)

// Line prefixes.
const (
	prefixRaw      = "VRX: "
	prefixPosition = "Position: x: "
	prefixLevels   = "LED Levels: R: "
)

// Sink formats reports into a reused buffer and writes them line by line.
// Delivery is best effort: write errors are counted and otherwise ignored.
type Sink struct {
	w    io.Writer
	buf  []byte
	errs uint32
}

func NewSink(w io.Writer) *Sink {
	return &Sink{w: w, buf: make([]byte, 0, 48)}
}

// Report writes the three telemetry lines for one loop iteration.
func (s *Sink) Report(r types.Report) {
	b := append(s.buf[:0], prefixRaw...)
	b = strconv.AppendUint(b, uint64(r.RawH), 10)
	b = append(b, ", VRY: "...)
	b = strconv.AppendUint(b, uint64(r.RawV), 10)
	s.flush(b)

	b = append(s.buf[:0], prefixPosition...)
	b = strconv.AppendUint(b, uint64(r.Pos.X), 10)
	b = append(b, " y: "...)
	b = strconv.AppendUint(b, uint64(r.Pos.Y), 10)
	s.flush(b)

	b = append(s.buf[:0], prefixLevels...)
	b = strconv.AppendUint(b, uint64(r.LED.Red), 10)
	b = append(b, ", G: "...)
	if r.LED.Green {
		b = append(b, '1')
	} else {
		b = append(b, '0')
	}
	b = append(b, ", B: "...)
	b = strconv.AppendUint(b, uint64(r.LED.Blue), 10)
	s.flush(b)
}

// Notice writes a free-form status line such as "PWM ENABLED".
func (s *Sink) Notice(msg string) {
	if msg == "" {
		return
	}
	s.flush(append(s.buf[:0], msg...))
}

// Errors counts failed writes.
func (s *Sink) Errors() uint32 { return s.errs }

func (s *Sink) flush(b []byte) {
	b = append(b, '\n')
	s.buf = b
	if s.w == nil {
		return
	}
	if _, err := s.w.Write(b); err != nil {
		s.errs++
	}
}
