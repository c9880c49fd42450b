package telemetry

import (
	"strconv"
	"strings"

	"joycursor/errcode"
	"joycursor/types"
)

// Kind classifies one console line.
type Kind uint8

const (
	KindNotice   Kind = iota // anything that is not a report line
	KindRaw                  // "VRX: h, VRY: v"
	KindPosition             // "Position: x: X y: Y"
	KindLevels               // "LED Levels: R: r, G: g, B: b"
)

// Event is the outcome of feeding one line.
type Event struct {
	Kind     Kind
	Complete bool         // Report holds a full raw/position/levels triple
	Report   types.Report // valid when Complete
	Notice   string       // valid for KindNotice
}

const (
	haveRaw uint8 = 1 << iota
	havePos
)

// Decoder reassembles reports from the line stream. A report is complete when
// its levels line arrives after both the raw and position lines.
type Decoder struct {
	cur  types.Report
	have uint8
}

// Feed decodes one line (without the trailing newline).
func (d *Decoder) Feed(line string) (Event, error) {
	line = strings.TrimRight(line, "\r\n")
	switch {
	case strings.HasPrefix(line, prefixRaw):
		h, v, err := pair(line[len(prefixRaw):], ", VRY: ")
		if err != nil {
			return Event{Kind: KindRaw}, errcode.Wrap(errcode.Malformed, "raw", err)
		}
		d.cur = types.Report{RawH: uint16(h), RawV: uint16(v)}
		d.have = haveRaw
		return Event{Kind: KindRaw}, nil

	case strings.HasPrefix(line, prefixPosition):
		x, y, err := pair(line[len(prefixPosition):], " y: ")
		if err != nil {
			return Event{Kind: KindPosition}, errcode.Wrap(errcode.Malformed, "position", err)
		}
		if x > 255 || y > 255 {
			return Event{Kind: KindPosition}, errcode.InvalidParams
		}
		d.cur.Pos = types.Position{X: uint8(x), Y: uint8(y)}
		d.have |= havePos
		return Event{Kind: KindPosition}, nil

	case strings.HasPrefix(line, prefixLevels):
		rest := line[len(prefixLevels):]
		red, rest, ok := strings.Cut(rest, ", G: ")
		green, blue, ok2 := strings.Cut(rest, ", B: ")
		if !ok || !ok2 {
			return Event{Kind: KindLevels}, errcode.Malformed
		}
		r, err := strconv.ParseUint(strings.TrimSpace(red), 10, 16)
		if err != nil {
			return Event{Kind: KindLevels}, errcode.Wrap(errcode.Malformed, "levels", err)
		}
		b, err := strconv.ParseUint(strings.TrimSpace(blue), 10, 16)
		if err != nil {
			return Event{Kind: KindLevels}, errcode.Wrap(errcode.Malformed, "levels", err)
		}
		d.cur.LED = types.Levels{Red: uint16(r), Blue: uint16(b), Green: strings.TrimSpace(green) != "0"}
		ev := Event{Kind: KindLevels}
		if d.have == haveRaw|havePos {
			ev.Complete, ev.Report = true, d.cur
		}
		d.have = 0
		return ev, nil

	default:
		return Event{Kind: KindNotice, Notice: line}, nil
	}
}

func pair(s, sep string) (uint64, uint64, error) {
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, errcode.Malformed
	}
	x, err := strconv.ParseUint(strings.TrimSpace(a), 10, 16)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseUint(strings.TrimSpace(b), 10, 16)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
