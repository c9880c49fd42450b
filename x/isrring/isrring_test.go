package isrring

import (
	"runtime"
	"sync"
	"testing"
)

func TestOrderAcrossWrap(t *testing.T) {
	var r Ring
	next := byte(0)
	want := byte(0)
	// Interleave small bursts so indices wrap many times.
	for round := 0; round < 200; round++ {
		for k := 0; k < 5; k++ {
			if !r.Put(next) {
				t.Fatalf("Put failed with %d queued", r.Len())
			}
			next++
		}
		r.Drain(func(b byte) {
			if b != want {
				t.Fatalf("got %d, want %d", b, want)
			}
			want++
		})
	}
	if r.Len() != 0 {
		t.Fatalf("Len = %d after drain", r.Len())
	}
}

func TestFullRingDrops(t *testing.T) {
	var r Ring
	for i := 0; i < Size; i++ {
		if !r.Put(byte(i)) {
			t.Fatalf("Put %d rejected before full", i)
		}
	}
	if r.Put(0xFF) {
		t.Fatal("Put accepted on full ring")
	}
	if r.Drops() != 1 {
		t.Fatalf("Drops = %d, want 1", r.Drops())
	}
	b, ok := r.Get()
	if !ok || b != 0 {
		t.Fatalf("Get = %d,%v, want oldest byte 0", b, ok)
	}
	if !r.Put(0xFF) {
		t.Fatal("Put rejected after space freed")
	}
}

func TestConcurrentProducerConsumer(t *testing.T) {
	var r Ring
	const n = 5000
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; {
			if r.Put(byte(i)) {
				i++
			} else {
				runtime.Gosched()
			}
		}
	}()
	want := byte(0)
	for got := 0; got < n; {
		if b, ok := r.Get(); ok {
			if b != want {
				t.Fatalf("got %d, want %d", b, want)
			}
			want++
			got++
		} else {
			runtime.Gosched()
		}
	}
	wg.Wait()
}
