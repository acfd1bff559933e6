package easel

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrNilSurface is returned when a Renderer is created without a surface.
	ErrNilSurface = errors.New("nil surface")
	// ErrInvalidFrameRate is returned for a max frame rate of zero or less.
	ErrInvalidFrameRate = errors.New("max frames per second must be positive")
)

// FrameStats accumulates draw counters over a Renderer's lifetime.
type FrameStats struct {
	Frames   uint64        // Draw calls, including empty ones
	Items    uint64        // renderables dispatched to a kind routine
	Colors   uint64        // ColorFill items drawn
	Texts    uint64        // Text items drawn
	Textures uint64        // Texture items drawn
	Ignored  uint64        // items of no known kind
	LastSize int           // items in the most recent frame
	LastDraw time.Duration // wall time of the most recent Draw
}

// Renderer owns a Surface and the queue of Renderables waiting to be drawn
// on it. Producers fill the queue with Enqueue or Submit; Draw flushes it.
//
// A Renderer does not start any timer on its own. Use Loop, Game or Run to
// drive Draw at the configured rate.
type Renderer struct {
	surface  Surface
	queue    *Queue
	maxFPS   int
	interval time.Duration

	drawMu sync.Mutex // serializes Draw and guards stats
	stats  FrameStats
	onDraw func()
	debug  atomic.Bool
}

// NewRenderer binds a renderer to surface and derives its draw interval
// from maxFPS (interval = 1s / maxFPS).
func NewRenderer(surface Surface, maxFPS int) (*Renderer, error) {
	if surface == nil {
		return nil, fmt.Errorf("easel: new renderer: %w", ErrNilSurface)
	}
	if maxFPS <= 0 {
		return nil, fmt.Errorf("easel: new renderer: %d: %w", maxFPS, ErrInvalidFrameRate)
	}
	return &Renderer{
		surface:  surface,
		queue:    NewQueue(),
		maxFPS:   maxFPS,
		interval: time.Second / time.Duration(maxFPS),
	}, nil
}

// MaxFPS returns the configured frame rate cap.
func (r *Renderer) MaxFPS() int { return r.maxFPS }

// Interval returns the time between two draw ticks.
func (r *Renderer) Interval() time.Duration { return r.interval }

// Loop returns a loop that calls onTick every Interval on clock. The loop
// is not started. A nil onTick draws the queue on each tick.
func (r *Renderer) Loop(clock Clock, onTick func(time.Time) error) *Loop {
	if onTick == nil {
		onTick = func(time.Time) error {
			r.Draw()
			return nil
		}
	}
	return NewLoop("draw", r.interval, clock, onTick)
}

// Enqueue appends item to the pending queue.
func (r *Renderer) Enqueue(item Renderable) {
	if r.debug.Load() {
		debugCheckRenderable(item)
	}
	r.queue.Push(item)
}

// Submit replaces the pending queue with items. This is the producer
// handoff: the previous frame, if it was never drawn, is discarded.
func (r *Renderer) Submit(items []Renderable) {
	if r.debug.Load() {
		for _, it := range items {
			debugCheckRenderable(it)
		}
	}
	r.queue.Replace(items)
}

// ClearQueue discards all pending renderables without drawing them.
func (r *Renderer) ClearQueue() {
	r.queue.Clear()
}

// Pending returns the number of renderables waiting for the next Draw.
func (r *Renderer) Pending() int {
	return r.queue.Len()
}

// OnDraw registers fn to run after every Draw, while the surface is still
// exclusively held. Surfaces that need an explicit present step (a terminal
// Show, a screenshot) hook in here. Must be set before drawing starts.
func (r *Renderer) OnDraw(fn func()) {
	r.drawMu.Lock()
	r.onDraw = fn
	r.drawMu.Unlock()
}

// Draw takes the pending queue, draws every item in insertion order, and
// leaves the queue empty. It returns the number of items drawn. Items
// enqueued while Draw runs are kept for the next call.
func (r *Renderer) Draw() int {
	r.drawMu.Lock()
	defer r.drawMu.Unlock()

	debug := r.debug.Load()
	var t0 time.Time
	if debug {
		t0 = time.Now()
	}

	items := r.queue.take()
	drawn := 0
	for _, it := range items {
		if r.drawItem(it) {
			drawn++
		}
	}
	r.stats.Frames++
	r.stats.Items += uint64(drawn)
	r.stats.LastSize = len(items)
	r.queue.recycle(items)

	if debug {
		r.stats.LastDraw = time.Since(t0)
		r.debugLog()
	}
	if r.onDraw != nil {
		r.onDraw()
	}
	return drawn
}

// drawItem dispatches one renderable to its kind routine. Anything that is
// not one of the known kinds is ignored.
func (r *Renderer) drawItem(item Renderable) bool {
	switch it := item.(type) {
	case ColorFill:
		r.drawColor(it)
		r.stats.Colors++
	case Text:
		r.drawText(it)
		r.stats.Texts++
	case Texture:
		r.drawTexture(it)
		r.stats.Textures++
	default:
		r.stats.Ignored++
		if r.debug.Load() {
			Logger().Warn("easel: ignoring renderable of unknown kind", "type", fmt.Sprintf("%T", item))
		}
		return false
	}
	return true
}

func (r *Renderer) drawColor(c ColorFill) {
	r.surface.SetFillStyle(c.Fill)
	r.surface.FillRect(c.Origin.X, c.Origin.Y, c.Extent.X, c.Extent.Y)
}

func (r *Renderer) drawText(t Text) {
	r.surface.SetFillStyle(t.Color)
	r.surface.SetFont(t.Font)
	r.surface.FillText(t.Content, t.Origin.X, t.Origin.Y)
}

func (r *Renderer) drawTexture(t Texture) {
	r.surface.DrawImage(t.Image, t.Origin.X, t.Origin.Y, t.Extent.X, t.Extent.Y)
}

// Width returns the current width of the bound surface in pixels.
func (r *Renderer) Width() int { return r.surface.Width() }

// Height returns the current height of the bound surface in pixels.
func (r *Renderer) Height() int { return r.surface.Height() }

// Stats returns a snapshot of the draw counters.
func (r *Renderer) Stats() FrameStats {
	r.drawMu.Lock()
	defer r.drawMu.Unlock()
	return r.stats
}

// SetDebugMode enables or disables debug mode. When enabled, malformed
// renderables panic at Enqueue/Submit, unknown kinds are logged, and
// per-frame stats are logged at debug level.
func (r *Renderer) SetDebugMode(enabled bool) {
	r.debug.Store(enabled)
}
