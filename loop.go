package easel

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Loop fires a callback at a fixed interval on a Clock until its context is
// done. Each firing runs to completion before the next tick is accepted;
// ticks that arrive while the callback runs are dropped by the ticker, not
// queued.
type Loop struct {
	name     string
	interval time.Duration
	clock    Clock
	fn       func(now time.Time) error

	ticks atomic.Uint64
}

// NewLoop creates a loop named name that calls fn every interval on clock.
// A nil clock means SystemClock.
func NewLoop(name string, interval time.Duration, clock Clock, fn func(now time.Time) error) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{name: name, interval: interval, clock: clock, fn: fn}
}

// Name returns the loop's name.
func (l *Loop) Name() string { return l.name }

// Interval returns the time between two firings.
func (l *Loop) Interval() time.Duration { return l.interval }

// Ticks returns how many times the callback has run.
func (l *Loop) Ticks() uint64 { return l.ticks.Load() }

// Run blocks, firing the callback on every tick. It returns nil when ctx is
// done and the callback's error, wrapped with the loop name, if it fails.
// A tick that was already received when ctx is cancelled still runs.
func (l *Loop) Run(ctx context.Context) error {
	if l.interval <= 0 {
		return fmt.Errorf("easel: %s loop: non-positive interval %v", l.name, l.interval)
	}
	t := l.clock.NewTicker(l.interval)
	defer t.Stop()

	Logger().Info("easel: loop started", "loop", l.name, "interval", l.interval)
	defer Logger().Info("easel: loop stopped", "loop", l.name, "ticks", l.ticks.Load())

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C():
			l.ticks.Add(1)
			if err := l.fn(now); err != nil {
				return fmt.Errorf("easel: %s loop: %w", l.name, err)
			}
		}
	}
}
