package telemetry

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"joycursor/errcode"
	"joycursor/types"
)

func TestSinkFormat(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf)
	s.Report(types.Report{
		RawH: 4082, RawV: 2049,
		Pos: types.Position{X: 120, Y: 28},
		LED: types.Levels{Red: 2033, Blue: 0, Green: true},
	})
	s.Notice("PWM DISABLED")
	s.Notice("")

	want := "VRX: 4082, VRY: 2049\n" +
		"Position: x: 120 y: 28\n" +
		"LED Levels: R: 2033, G: 1, B: 0\n" +
		"PWM DISABLED\n"
	if got := buf.String(); got != want {
		t.Fatalf("sink output:\n%s\nwant:\n%s", got, want)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("tx full") }

func TestSinkCountsErrors(t *testing.T) {
	s := NewSink(failWriter{})
	s.Report(types.Report{})
	if s.Errors() != 3 {
		t.Fatalf("Errors() = %d, want 3", s.Errors())
	}
}

func TestRoundTripThroughDecoder(t *testing.T) {
	reports := []types.Report{
		{RawH: 2049, RawV: 2049, Pos: types.Center},
		{RawH: 16, RawV: 16, Pos: types.Position{X: 0, Y: 56}, LED: types.Levels{Red: 2033, Blue: 2033}},
		{RawH: 3000, RawV: 1000, Pos: types.Position{X: 94, Y: 48}, LED: types.Levels{Red: 951, Blue: 1049, Green: true}},
	}
	var buf bytes.Buffer
	s := NewSink(&buf)
	for i, r := range reports {
		s.Report(r)
		if i == 0 {
			s.Notice("ANIMATION ENABLED")
		}
	}

	var d Decoder
	var got []types.Report
	var notices []string
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		ev, err := d.Feed(sc.Text())
		if err != nil {
			t.Fatalf("Feed(%q): %v", sc.Text(), err)
		}
		if ev.Complete {
			got = append(got, ev.Report)
		}
		if ev.Kind == KindNotice {
			notices = append(notices, ev.Notice)
		}
	}
	if len(got) != len(reports) {
		t.Fatalf("decoded %d reports, want %d", len(got), len(reports))
	}
	for i := range reports {
		if got[i] != reports[i] {
			t.Errorf("report %d = %+v, want %+v", i, got[i], reports[i])
		}
	}
	if len(notices) != 1 || notices[0] != "ANIMATION ENABLED" {
		t.Fatalf("notices = %q", notices)
	}
}

func TestDecoderPartialReport(t *testing.T) {
	var d Decoder
	// Levels without the preceding lines (e.g. attached mid-report).
	ev, err := d.Feed("LED Levels: R: 1, G: 0, B: 2")
	if err != nil || ev.Complete {
		t.Fatalf("partial levels: ev=%+v err=%v", ev, err)
	}
	for _, l := range []string{"VRX: 1, VRY: 2\r\n", "Position: x: 3 y: 4"} {
		if _, err := d.Feed(l); err != nil {
			t.Fatalf("Feed(%q): %v", l, err)
		}
	}
	ev, err = d.Feed("LED Levels: R: 5, G: 1, B: 6")
	if err != nil || !ev.Complete {
		t.Fatalf("full report: ev=%+v err=%v", ev, err)
	}
	want := types.Report{RawH: 1, RawV: 2, Pos: types.Position{X: 3, Y: 4}, LED: types.Levels{Red: 5, Blue: 6, Green: true}}
	if ev.Report != want {
		t.Fatalf("report = %+v, want %+v", ev.Report, want)
	}
}

func TestDecoderMalformed(t *testing.T) {
	for _, line := range []string{
		"VRX: abc, VRY: 1",
		"VRX: 1",
		"Position: x: 1",
		"LED Levels: R: 1, B: 2",
		"LED Levels: R: x, G: 0, B: 2",
	} {
		var d Decoder
		_, err := d.Feed(line)
		if errcode.Of(err) != errcode.Malformed {
			t.Errorf("Feed(%q) err = %v, want malformed", line, err)
		}
	}
	var d Decoder
	if _, err := d.Feed("Position: x: 300 y: 1"); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("out of range position err = %v", err)
	}
	if ev, _ := d.Feed("boot"); ev.Kind != KindNotice || !strings.EqualFold(ev.Notice, "BOOT") {
		t.Fatalf("plain line should be a notice, got %+v", ev)
	}
}
