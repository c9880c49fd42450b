package ramp

import (
	"testing"
	"time"
)

type frame struct{ x, y uint8 }

func TestGlideTenFrames(t *testing.T) {
	var got []frame
	var slept time.Duration
	ok := Glide(60, 28, 0, 56, 10, 100*time.Millisecond,
		func(d time.Duration) bool { slept += d; return true },
		func(x, y uint8) { got = append(got, frame{x, y}) })
	if !ok {
		t.Fatal("glide reported cancellation")
	}
	if len(got) != 10 {
		t.Fatalf("plotted %d frames, want 10", len(got))
	}
	if got[0] != (frame{60, 28}) {
		t.Fatalf("first frame = %+v, want start point", got[0])
	}
	// Step is -6 on x and +2.8 on y; the 10th frame is one step short of the target.
	if got[9] != (frame{6, 53}) {
		t.Fatalf("last frame = %+v, want {6 53}", got[9])
	}
	if slept != 100*time.Millisecond {
		t.Fatalf("total delay = %v, want 100ms", slept)
	}
}

func TestGlideMonotonic(t *testing.T) {
	var xs []uint8
	Glide(0, 0, 120, 0, 10, 0,
		func(time.Duration) bool { return true },
		func(x, _ uint8) { xs = append(xs, x) })
	for k := 1; k < len(xs); k++ {
		if xs[k] < xs[k-1] {
			t.Fatalf("frames not monotonic: %v", xs)
		}
	}
}

func TestGlideCancel(t *testing.T) {
	n := 0
	ok := Glide(0, 0, 100, 50, 10, 100*time.Millisecond,
		func(time.Duration) bool { return n < 3 },
		func(uint8, uint8) { n++ })
	if ok {
		t.Fatal("expected cancellation")
	}
	if n != 3 {
		t.Fatalf("plotted %d frames before cancel, want 3", n)
	}
}

func TestGlideZeroFrames(t *testing.T) {
	called := false
	if !Glide(1, 2, 3, 4, 0, time.Second, func(time.Duration) bool { return true }, func(uint8, uint8) { called = true }) {
		t.Fatal("zero-frame glide should succeed")
	}
	if called {
		t.Fatal("zero-frame glide should not plot")
	}
}
