package halcore

import "testing"

func TestEdgeToString(t *testing.T) {
	for e, want := range map[Edge]string{
		EdgeNone:    "none",
		EdgeRising:  "rising",
		EdgeFalling: "falling",
		EdgeBoth:    "both",
		Edge(9):     "none",
	} {
		if got := EdgeToString(e); got != want {
			t.Fatalf("EdgeToString(%d) = %q, want %q", e, got, want)
		}
	}
}
