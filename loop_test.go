package easel

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoopRunsOnEveryTick(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	var times []time.Duration
	l := NewLoop("test", 10*time.Millisecond, clock, func(now time.Time) error {
		times = append(times, now.Sub(time.Unix(0, 0)))
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	clock.WaitForTickers(1)
	clock.Advance(35 * time.Millisecond)
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}

	if l.Ticks() != 3 {
		t.Errorf("Ticks = %d, want 3", l.Ticks())
	}
	want := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}
	for i := range want {
		if i >= len(times) || times[i] != want[i] {
			t.Fatalf("tick times = %v, want %v", times, want)
		}
	}
}

func TestLoopErrorStops(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	boom := errors.New("boom")
	l := NewLoop("logic", time.Millisecond, clock, func(time.Time) error { return boom })

	done := make(chan error, 1)
	go func() { done <- l.Run(context.Background()) }()
	clock.WaitForTickers(1)
	clock.Advance(5 * time.Millisecond)

	err := <-done
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if !strings.Contains(err.Error(), "logic loop") {
		t.Errorf("err = %q, want loop name", err)
	}
	if l.Ticks() != 1 {
		t.Errorf("Ticks = %d, want 1", l.Ticks())
	}
}

func TestLoopNonPositiveInterval(t *testing.T) {
	l := NewLoop("bad", 0, nil, func(time.Time) error { return nil })
	if err := l.Run(context.Background()); err == nil {
		t.Error("expected error for zero interval")
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	l := NewLoop("idle", time.Hour, nil, func(time.Time) error { return nil })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Run(ctx); err != nil {
		t.Errorf("Run = %v, want nil", err)
	}
	if l.Ticks() != 0 {
		t.Errorf("Ticks = %d, want 0", l.Ticks())
	}
}
