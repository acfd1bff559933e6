package easel

import "time"

// DefaultMaxCatchUp bounds how many capped ticks a FrameLimiter reports for
// a single Advance after a stall.
const DefaultMaxCatchUp = 4

// FrameLimiter turns elapsed wall time into fixed-interval ticks. Hosts that
// own the thread (ebiten calls Draw once per display frame) use it to run the
// capped draw loop without a second goroutine.
type FrameLimiter struct {
	interval time.Duration
	acc      time.Duration

	// MaxCatchUp caps the ticks returned by one Advance. Zero or less means
	// no cap. Ticks above the cap are dropped, not carried.
	MaxCatchUp int
}

// NewFrameLimiter creates a limiter firing every interval.
func NewFrameLimiter(interval time.Duration) *FrameLimiter {
	if interval <= 0 {
		panic("easel: non-positive FrameLimiter interval")
	}
	return &FrameLimiter{interval: interval, MaxCatchUp: DefaultMaxCatchUp}
}

// Interval returns the tick interval.
func (f *FrameLimiter) Interval() time.Duration { return f.interval }

// Advance adds elapsed to the accumulator and returns how many ticks fell
// due. The remainder carries over to the next call.
func (f *FrameLimiter) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		f.acc += elapsed
	}
	n := int(f.acc / f.interval)
	f.acc -= time.Duration(n) * f.interval
	if f.MaxCatchUp > 0 && n > f.MaxCatchUp {
		n = f.MaxCatchUp
	}
	return n
}

// Reset drops any accumulated time.
func (f *FrameLimiter) Reset() { f.acc = 0 }
