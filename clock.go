package easel

import (
	"sync"
	"time"
)

// Clock is the time source loops are scheduled on.
type Clock interface {
	Now() time.Time
	// NewTicker returns a ticker firing every d. d must be positive.
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// NewTicker wraps time.NewTicker.
func (SystemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{time.NewTicker(d)}
}

type systemTicker struct{ t *time.Ticker }

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

// ManualClock is a Clock that only moves when told to. Tickers created
// from it fire synchronously inside Advance: each tick is handed to the
// receiving loop before Advance moves on, so tick counts are exact.
type ManualClock struct {
	mu      sync.Mutex
	cond    *sync.Cond
	now     time.Time
	tickers []*manualTicker
}

// NewManualClock creates a manual clock reading start.
func NewManualClock(start time.Time) *ManualClock {
	m := &ManualClock{now: start}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Now returns the current manual time.
func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// NewTicker registers a ticker whose first tick is due at Now()+d.
func (m *ManualClock) NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		panic("easel: non-positive interval for ManualClock.NewTicker")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTicker{
		clock:    m,
		c:        make(chan time.Time),
		interval: d,
		next:     m.now.Add(d),
		stopped:  make(chan struct{}),
	}
	m.tickers = append(m.tickers, t)
	m.cond.Broadcast()
	return t
}

// WaitForTickers blocks until at least n tickers are active. Use it to make
// sure started loops are listening before advancing the clock.
func (m *ManualClock) WaitForTickers(n int) {
	m.mu.Lock()
	for len(m.tickers) < n {
		m.cond.Wait()
	}
	m.mu.Unlock()
}

// Advance moves the clock forward by d, firing every tick that falls due in
// deadline order. Ticks with equal deadlines fire in ticker creation order.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	for {
		t := m.earliestDue(target)
		if t == nil {
			break
		}
		at := t.next
		t.next = t.next.Add(t.interval)
		m.now = at
		m.mu.Unlock()
		select {
		case t.c <- at:
		case <-t.stopped:
		}
		m.mu.Lock()
	}
	if target.After(m.now) {
		m.now = target
	}
	m.mu.Unlock()
}

// Set moves the clock to t. Moving backwards only changes Now.
func (m *ManualClock) Set(t time.Time) {
	m.mu.Lock()
	d := t.Sub(m.now)
	if d < 0 {
		m.now = t
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()
	m.Advance(d)
}

// earliestDue returns the active ticker with the earliest deadline not after
// target. Called with mu held.
func (m *ManualClock) earliestDue(target time.Time) *manualTicker {
	var best *manualTicker
	for _, t := range m.tickers {
		if t.next.After(target) {
			continue
		}
		if best == nil || t.next.Before(best.next) {
			best = t
		}
	}
	return best
}

func (m *ManualClock) remove(t *manualTicker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.tickers {
		if c == t {
			m.tickers = append(m.tickers[:i], m.tickers[i+1:]...)
			return
		}
	}
}

type manualTicker struct {
	clock    *ManualClock
	c        chan time.Time
	interval time.Duration
	next     time.Time
	stopped  chan struct{}
	stopOnce sync.Once
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopped)
		t.clock.remove(t)
	})
}
