package easel

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures Run. Zero values select defaults.
type RunConfig struct {
	Title     string
	Width     int // canvas width; default 640
	Height    int // canvas height; default 480
	MaxFPS    int // draw ticks per second; default DefaultMaxFPS
	ShowFPS   bool
	Resizable bool // canvas follows the window size
	Debug     bool // renderer debug mode

	// ScreenshotDir receives PNGs queued with Host.Screenshot.
	// Default "screenshots".
	ScreenshotDir string

	// Clock times logic deltas and draw pacing. Defaults to SystemClock.
	Clock Clock
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "easel"
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.MaxFPS <= 0 {
		c.MaxFPS = DefaultMaxFPS
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.Clock == nil {
		c.Clock = SystemClock{}
	}
	return c
}

// Host runs a Game inside ebiten. Ebiten's Update, synced to the display,
// is the logic loop. Ebiten's Draw feeds wall time to a FrameLimiter and
// flushes the renderer onto a persistent canvas once per due draw tick,
// then shows the canvas. Both loops run on ebiten's game goroutine.
type Host struct {
	game     *Game
	renderer *Renderer
	canvas   *ImageSurface
	limiter  *FrameLimiter
	cfg      RunConfig

	lastDraw  time.Time
	drawMeter FPSMeter

	screenshotQueue []string
}

// NewHost builds the renderer, canvas and game for scene.
func NewHost(scene Scene, cfg RunConfig) (*Host, error) {
	cfg = cfg.withDefaults()
	canvas := NewImageSurface(cfg.Width, cfg.Height)
	r, err := NewRenderer(canvas, cfg.MaxFPS)
	if err != nil {
		return nil, err
	}
	r.SetDebugMode(cfg.Debug)
	g, err := NewGame(r, scene, GameConfig{Clock: cfg.Clock})
	if err != nil {
		return nil, err
	}
	g.lastLogic = cfg.Clock.Now()
	return &Host{
		game:     g,
		renderer: r,
		canvas:   canvas,
		limiter:  NewFrameLimiter(r.Interval()),
		cfg:      cfg,
	}, nil
}

// Game returns the hosted game.
func (h *Host) Game() *Game { return h.game }

// Update implements ebiten.Game. It is the logic tick.
func (h *Host) Update() error {
	return h.game.logicTick(h.cfg.Clock.Now())
}

// Draw implements ebiten.Game. It runs the capped draw ticks that fell due
// since the previous frame and presents the canvas.
func (h *Host) Draw(screen *ebiten.Image) {
	now := h.cfg.Clock.Now()
	due := 1
	if !h.lastDraw.IsZero() {
		due = h.limiter.Advance(now.Sub(h.lastDraw))
	}
	h.lastDraw = now
	for i := 0; i < due; i++ {
		h.drawMeter.Tick(now)
		_ = h.game.drawTick(now)
	}

	screen.DrawImage(h.canvas.Image(), nil)

	if h.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nDraw: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), h.drawMeter.FPS()))
	}
	h.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.cfg.Resizable && outsideWidth > 0 && outsideHeight > 0 {
		h.canvas.Resize(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return h.cfg.Width, h.cfg.Height
}

// Run opens a window and runs scene until the window closes or the scene's
// Update returns an error. Returning ebiten.Termination ends the run
// without an error.
func Run(scene Scene, cfg RunConfig) error {
	h, err := NewHost(scene, cfg)
	if err != nil {
		return err
	}
	return RunHost(h)
}

// RunHost opens a window for a host built with NewHost. Use it instead of
// Run when the program needs the host, for example to queue screenshots.
func RunHost(h *Host) error {
	cfg := h.cfg
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(h)
}
