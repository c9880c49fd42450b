// Package monitor follows the firmware console from the host side and logs
// decoded reports.
package monitor

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"joycursor/services/telemetry"
	"joycursor/types"
)

type Config struct {
	Logger *slog.Logger // default slog.Default()
	Raw    bool         // also log every line verbatim
}

// Stats summarises what has been seen so far.
type Stats struct {
	Lines     uint64
	Reports   uint64
	Notices   uint64
	Malformed uint64
	Last      types.Report
}

type Monitor struct {
	log   *slog.Logger
	raw   bool
	dec   telemetry.Decoder
	stats Stats
}

func New(c Config) *Monitor {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return &Monitor{log: c.Logger, raw: c.Raw}
}

// Run consumes r line by line until EOF, a read error or ctx is done. The
// caller unblocks a pending read by closing r.
func (m *Monitor) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		m.Line(sc.Text())
	}
	err := sc.Err()
	if err == nil || errors.Is(err, io.EOF) || ctx.Err() != nil {
		return nil
	}
	return err
}

// Line handles one console line.
func (m *Monitor) Line(line string) {
	m.stats.Lines++
	if m.raw {
		m.log.Info("line", "text", line)
	}
	ev, err := m.dec.Feed(line)
	if err != nil {
		m.stats.Malformed++
		m.log.Warn("malformed telemetry", "line", line, "err", err)
		return
	}
	switch {
	case ev.Kind == telemetry.KindNotice:
		if ev.Notice == "" {
			return
		}
		m.stats.Notices++
		m.log.Info("notice", "text", ev.Notice)
	case ev.Complete:
		m.report(ev.Report)
	}
}

func (m *Monitor) report(r types.Report) {
	prev := m.stats.Last
	first := m.stats.Reports == 0
	m.stats.Reports++
	m.stats.Last = r

	attrs := []any{
		"vrx", r.RawH, "vry", r.RawV,
		"x", r.Pos.X, "y", r.Pos.Y,
		"red", r.LED.Red, "blue", r.LED.Blue, "green", r.LED.Green,
	}
	if first || r.Pos != prev.Pos || r.LED != prev.LED {
		m.log.Info("cursor", attrs...)
		return
	}
	m.log.Debug("cursor", attrs...)
}

// Stats returns a copy of the counters.
func (m *Monitor) Stats() Stats { return m.stats }
