package control

import (
	"sync"
	"testing"

	"joycursor/types"
	"joycursor/x/isrring"
)

// fakeClock is advanced by hand; Micros is read from IRQ-style calls.
type fakeClock struct{ us uint64 }

func (c *fakeClock) Micros() uint64 { return c.us }

type fakeSwitch struct{ on bool }

func (s *fakeSwitch) Enable(on bool) { s.on = on }

type fakePin struct{ level bool }

func (p *fakePin) Set(level bool) { p.level = level }

type rig struct {
	clk   *fakeClock
	red   *fakeSwitch
	blue  *fakeSwitch
	green *fakePin
	notes *isrring.Ring
	h     *Handler
}

func newRig() *rig {
	r := &rig{
		clk:   &fakeClock{us: 1_000_000},
		red:   &fakeSwitch{on: true},
		blue:  &fakeSwitch{on: true},
		green: &fakePin{},
		notes: &isrring.Ring{},
	}
	r.h = NewHandler(Config{
		State:   NewState(),
		Clock:   r.clk,
		PWM:     []Switch{r.red, r.blue},
		Green:   r.green,
		Notices: r.notes,
	})
	return r
}

func (r *rig) press(b types.Button, afterUs uint64) {
	r.clk.us += afterUs
	r.h.Edge(b)
}

func TestPowerOnState(t *testing.T) {
	got := NewState().Snapshot()
	want := types.Modes{PWM: true}
	if got != want {
		t.Fatalf("power-on modes = %+v, want %+v", got, want)
	}
}

func TestButtonATogglesPWM(t *testing.T) {
	r := newRig()
	r.press(types.ButtonA, 0)
	if r.h.State().PWMEnabled() || r.red.on || r.blue.on {
		t.Fatal("first A press should disable PWM on both channels")
	}
	r.press(types.ButtonA, Window)
	if !r.h.State().PWMEnabled() || !r.red.on || !r.blue.on {
		t.Fatal("second A press should re-enable PWM on both channels")
	}
	var lines []string
	r.notes.Drain(func(b byte) { lines = append(lines, NoticeText(b)) })
	if len(lines) != 2 || lines[0] != "PWM DISABLED" || lines[1] != "PWM ENABLED" {
		t.Fatalf("notices = %q", lines)
	}
}

func TestButtonBTogglesAnimationOnly(t *testing.T) {
	r := newRig()
	r.press(types.ButtonB, 0)
	m := r.h.State().Snapshot()
	if !m.Animate || !m.PWM || m.Border != 0 || m.Green {
		t.Fatalf("modes after B = %+v", m)
	}
	b, _ := r.notes.Get()
	if NoticeText(b) != "ANIMATION ENABLED" {
		t.Fatalf("notice = %q", NoticeText(b))
	}
}

func TestJoystickPressCyclesBorderAndGreen(t *testing.T) {
	r := newRig()
	wantBorder := []uint8{1, 2, 3, 4, 0, 1}
	for i, want := range wantBorder {
		r.press(types.ButtonJoy, Window)
		if got := r.h.State().BorderStyle(); got != want {
			t.Fatalf("press %d: border = %d, want %d", i, got, want)
		}
		wantGreen := i%2 == 0
		if r.green.level != wantGreen || r.h.State().GreenOn() != wantGreen {
			t.Fatalf("press %d: green pin=%v state=%v, want %v", i, r.green.level, r.h.State().GreenOn(), wantGreen)
		}
	}
	if r.notes.Len() != 0 {
		t.Fatal("joystick press should not queue notices")
	}
}

func TestDebounceIsGlobalAcrossButtons(t *testing.T) {
	for _, tc := range []struct {
		name       string
		first      types.Button
		second     types.Button
		gapUs      uint64
		secondSeen bool
	}{
		{"same button inside window", types.ButtonA, types.ButtonA, Window - 1, false},
		{"other button inside window", types.ButtonA, types.ButtonB, 50_000, false},
		{"joystick masks A", types.ButtonJoy, types.ButtonA, 199_999, false},
		{"exactly at window", types.ButtonA, types.ButtonB, Window, true},
		{"well after window", types.ButtonB, types.ButtonJoy, 1_000_000, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := newRig()
			r.press(tc.first, 0)
			r.press(tc.second, tc.gapUs)
			seen := r.h.Accepted(tc.second) > 0
			if tc.first == tc.second {
				seen = r.h.Accepted(tc.second) > 1
			}
			if seen != tc.secondSeen {
				t.Fatalf("second edge accepted=%v, want %v", seen, tc.secondSeen)
			}
			wantDrops := uint32(0)
			if !tc.secondSeen {
				wantDrops = 1
			}
			if r.h.Dropped() != wantDrops {
				t.Fatalf("drops = %d, want %d", r.h.Dropped(), wantDrops)
			}
		})
	}
}

func TestDroppedEdgeMeasuresFromLastAccepted(t *testing.T) {
	r := newRig()
	r.press(types.ButtonA, 0)       // accepted at t0
	r.press(types.ButtonB, 150_000) // dropped, does not restart the window
	r.press(types.ButtonB, 60_000)  // t0+210ms: accepted
	if r.h.Accepted(types.ButtonB) != 1 {
		t.Fatalf("B accepted %d times, want 1", r.h.Accepted(types.ButtonB))
	}
}

func TestEdgesDuringFirstWindowAfterBootAreDropped(t *testing.T) {
	d := NewDebouncer(0)
	if d.Accept(150_000) {
		t.Fatal("edge 150ms after boot should be dropped")
	}
	if !d.Accept(200_000) {
		t.Fatal("edge 200ms after boot should be accepted")
	}
	if d.Last() != 200_000 {
		t.Fatalf("Last = %d", d.Last())
	}
}

func TestClockGoingBackwardsIsDropped(t *testing.T) {
	d := NewDebouncer(10)
	if !d.Accept(100) {
		t.Fatal("first edge rejected")
	}
	if d.Accept(50) {
		t.Fatal("edge with earlier timestamp accepted")
	}
}

func TestUnknownButtonConsumesCooldown(t *testing.T) {
	r := newRig()
	r.press(types.ButtonNone, 0)
	r.press(types.ButtonA, 1000)
	if !r.h.State().PWMEnabled() {
		t.Fatal("A inside the window of an unknown edge should be dropped")
	}
}

func TestConcurrentEdgesAcceptOnlyOne(t *testing.T) {
	d := NewDebouncer(0)
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if d.Accept(5_000_000) {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if accepted != 1 {
		t.Fatalf("accepted %d simultaneous edges, want 1", accepted)
	}
}
