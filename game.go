package easel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultMaxFPS      = 60                    // draw ticks per second
	DefaultDisplayRate = 60                    // logic ticks per second on hosts without vsync
	DefaultMaxDelta    = 60 * time.Millisecond // clamp for a single logic step
)

var (
	// ErrGameRunning is returned by Start when the game is already running.
	ErrGameRunning = errors.New("game already running")
	// ErrNilScene is returned when a Game is created without a scene.
	ErrNilScene = errors.New("nil scene")
)

// Scene produces the frame. Once per logic tick Update advances its state,
// then Renderables regenerates the complete ordered draw list from scratch
// for a surface of the given size.
type Scene interface {
	Update(dt time.Duration) error
	Renderables(width, height int) []Renderable
}

// SceneFuncs adapts a pair of functions to Scene. Either may be nil.
type SceneFuncs struct {
	UpdateFunc func(dt time.Duration) error
	RenderFunc func(width, height int) []Renderable
}

// Update calls UpdateFunc.
func (f SceneFuncs) Update(dt time.Duration) error {
	if f.UpdateFunc == nil {
		return nil
	}
	return f.UpdateFunc(dt)
}

// Renderables calls RenderFunc.
func (f SceneFuncs) Renderables(width, height int) []Renderable {
	if f.RenderFunc == nil {
		return nil
	}
	return f.RenderFunc(width, height)
}

// GameConfig configures a Game. Zero values select defaults.
type GameConfig struct {
	// DisplayRate is the logic loop frequency in Hz, standing in for the
	// display refresh on hosts that have no vsync callback.
	DisplayRate int
	// MaxDelta clamps the dt handed to Scene.Update after a stall.
	MaxDelta time.Duration
	// Clock schedules both loops. Defaults to SystemClock.
	Clock Clock
}

func (c GameConfig) withDefaults() GameConfig {
	if c.DisplayRate <= 0 {
		c.DisplayRate = DefaultDisplayRate
	}
	if c.MaxDelta <= 0 {
		c.MaxDelta = DefaultMaxDelta
	}
	if c.Clock == nil {
		c.Clock = SystemClock{}
	}
	return c
}

// Game is the composition root: it runs a logic loop that regenerates the
// scene's renderables at display rate and a draw loop that flushes them at
// the renderer's capped rate. The loops are not synchronized with each
// other; they meet only at the renderer's queue.
type Game struct {
	renderer *Renderer
	scene    Scene
	cfg      GameConfig

	logic *Loop
	draw  *Loop

	lastLogic  time.Time // touched only by the logic loop
	logicTicks atomic.Uint64
	drawTicks  atomic.Uint64

	mu      sync.Mutex
	cancel  context.CancelFunc
	group   *errgroup.Group
	running atomic.Bool
}

// NewGame wires scene to renderer.
func NewGame(r *Renderer, scene Scene, cfg GameConfig) (*Game, error) {
	if r == nil {
		return nil, fmt.Errorf("easel: new game: nil renderer")
	}
	if scene == nil {
		return nil, fmt.Errorf("easel: new game: %w", ErrNilScene)
	}
	cfg = cfg.withDefaults()
	g := &Game{renderer: r, scene: scene, cfg: cfg}
	g.logic = NewLoop("logic", time.Second/time.Duration(cfg.DisplayRate), cfg.Clock, g.logicTick)
	g.draw = r.Loop(cfg.Clock, g.drawTick)
	return g, nil
}

// Renderer returns the game's renderer.
func (g *Game) Renderer() *Renderer { return g.renderer }

// LogicTicks returns how many logic ticks have run.
func (g *Game) LogicTicks() uint64 { return g.logicTicks.Load() }

// DrawTicks returns how many draw ticks have run.
func (g *Game) DrawTicks() uint64 { return g.drawTicks.Load() }

// Running reports whether the loops are started.
func (g *Game) Running() bool { return g.running.Load() }

// Start launches both loops and returns immediately. The loops stop when ctx
// is done, when Stop is called, or when either loop fails.
func (g *Game) Start(ctx context.Context) error {
	if !g.running.CompareAndSwap(false, true) {
		return fmt.Errorf("easel: start: %w", ErrGameRunning)
	}
	ctx, cancel := context.WithCancel(ctx)
	group, gctx := errgroup.WithContext(ctx)

	g.lastLogic = g.cfg.Clock.Now()
	group.Go(func() error { return g.logic.Run(gctx) })
	group.Go(func() error { return g.draw.Run(gctx) })

	g.mu.Lock()
	g.cancel = cancel
	g.group = group
	g.mu.Unlock()
	return nil
}

// Wait blocks until both loops have returned and reports the first error.
func (g *Game) Wait() error {
	g.mu.Lock()
	group, cancel := g.group, g.cancel
	g.mu.Unlock()
	if group == nil {
		return nil
	}
	err := group.Wait()
	cancel()

	g.mu.Lock()
	if g.group == group {
		g.group, g.cancel = nil, nil
		g.running.Store(false)
	}
	g.mu.Unlock()
	return err
}

// Stop cancels both loops and waits for them to return.
func (g *Game) Stop() error {
	g.mu.Lock()
	cancel := g.cancel
	g.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	return g.Wait()
}

// Run starts the loops and blocks until they stop.
func (g *Game) Run(ctx context.Context) error {
	if err := g.Start(ctx); err != nil {
		return err
	}
	return g.Wait()
}

// logicTick advances the scene and hands its fresh draw list to the renderer.
func (g *Game) logicTick(now time.Time) error {
	dt := now.Sub(g.lastLogic)
	if dt < 0 {
		dt = 0
	}
	if dt > g.cfg.MaxDelta {
		dt = g.cfg.MaxDelta
	}
	g.lastLogic = now
	g.logicTicks.Add(1)

	if err := g.scene.Update(dt); err != nil {
		return fmt.Errorf("scene update: %w", err)
	}
	g.renderer.Submit(g.scene.Renderables(g.renderer.Width(), g.renderer.Height()))
	return nil
}

func (g *Game) drawTick(time.Time) error {
	g.drawTicks.Add(1)
	g.renderer.Draw()
	return nil
}
