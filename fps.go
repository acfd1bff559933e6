package easel

import (
	"math"
	"time"
)

// fpsSmoothing is the divisor of the exponential moving average: each sample
// moves the estimate 1/20th of the way toward itself.
const fpsSmoothing = 20

// FPSMeter estimates a loop's rate from the time between its ticks using an
// exponential moving average. It is not safe for concurrent use; keep one
// meter per loop.
type FPSMeter struct {
	last  time.Time
	delta float64 // smoothed milliseconds between ticks
}

// Tick records a tick at now. The first call only sets the reference time.
func (m *FPSMeter) Tick(now time.Time) {
	if !m.last.IsZero() {
		sample := float64(now.Sub(m.last)) / float64(time.Millisecond)
		m.delta += (sample - m.delta) / fpsSmoothing
	}
	m.last = now
}

// Observe records a tick dt after the previous one.
func (m *FPSMeter) Observe(dt time.Duration) {
	sample := float64(dt) / float64(time.Millisecond)
	m.delta += (sample - m.delta) / fpsSmoothing
}

// FPS returns the smoothed rate rounded to the nearest integer, or 0 before
// any interval has been observed.
func (m *FPSMeter) FPS() int {
	if m.delta <= 0 {
		return 0
	}
	return int(math.Round(1000 / m.delta))
}
