package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	cause := errors.New("nack")
	for _, c := range []struct {
		err  error
		want Code
	}{
		{nil, OK},
		{UnknownPin, UnknownPin},
		{Wrap(DisplayInit, "ssd1306", cause), DisplayInit},
		{cause, Error},
	} {
		if got := Of(c.err); got != c.want {
			t.Fatalf("Of(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestWrap(t *testing.T) {
	if Wrap(BusInit, "i2c1", nil) != nil {
		t.Fatal("Wrap(nil) should stay nil")
	}
	cause := errors.New("timeout")
	err := Wrap(BusInit, "i2c1", cause)
	if !errors.Is(err, cause) {
		t.Fatal("wrapped error should unwrap to cause")
	}
	if got, want := err.Error(), "i2c1: bus_init: timeout"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
