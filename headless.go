package easel

import (
	"image"
	"image/draw"
	"time"
)

// HeadlessConfig configures NewHeadless. Zero values select defaults.
type HeadlessConfig struct {
	Width       int // default 640
	Height      int // default 480
	MaxFPS      int // default DefaultMaxFPS
	DisplayRate int // logic ticks per second; default DefaultDisplayRate
	Start       time.Time
	Debug       bool
}

func (c HeadlessConfig) withDefaults() HeadlessConfig {
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.MaxFPS <= 0 {
		c.MaxFPS = DefaultMaxFPS
	}
	if c.DisplayRate <= 0 {
		c.DisplayRate = DefaultDisplayRate
	}
	return c
}

// Headless runs a scene on a SoftwareSurface with simulated time. It
// satisfies ScriptTarget.
type Headless struct {
	game    *Game
	surface *SoftwareSurface
	stepper *Stepper
}

// NewHeadless builds a software surface, renderer, game and stepper for scene.
func NewHeadless(scene Scene, cfg HeadlessConfig) (*Headless, error) {
	cfg = cfg.withDefaults()
	surface := NewSoftwareSurface(cfg.Width, cfg.Height)
	r, err := NewRenderer(surface, cfg.MaxFPS)
	if err != nil {
		return nil, err
	}
	r.SetDebugMode(cfg.Debug)
	g, err := NewGame(r, scene, GameConfig{DisplayRate: cfg.DisplayRate})
	if err != nil {
		return nil, err
	}
	s, err := g.NewStepper(cfg.Start)
	if err != nil {
		return nil, err
	}
	return &Headless{game: g, surface: surface, stepper: s}, nil
}

// Game returns the driven game.
func (h *Headless) Game() *Game { return h.game }

// Surface returns the software surface frames are drawn on.
func (h *Headless) Surface() *SoftwareSurface { return h.surface }

// Now returns the simulated time.
func (h *Headless) Now() time.Time { return h.stepper.Now() }

// Advance runs the logic and draw ticks that fall due within d.
func (h *Headless) Advance(d time.Duration) error { return h.stepper.Advance(d) }

// Snapshot copies the current frame.
func (h *Headless) Snapshot() (image.Image, error) {
	src := h.surface.Snapshot()
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst, nil
}

// Resize changes the surface size. The next logic tick sees the new size.
func (h *Headless) Resize(width, height int) error {
	return h.surface.Resize(width, height)
}

// Close releases the surface.
func (h *Headless) Close() error { return h.surface.Close() }
