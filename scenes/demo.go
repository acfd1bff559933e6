package scenes

import (
	"fmt"
	"time"

	"github.com/phanxgames/easel"
	"github.com/tanema/gween/ease"
)

// ExampleText is the demo's typewriter text.
const ExampleText = "This is some example text that will be written."

var (
	backgroundColor = easel.MustParseColor("#7e7e7e")
	fpsColor        = easel.MustParseColor("red")
	panelColor      = easel.MustParseColor("#000")
	panelTextColor  = easel.MustParseColor("#fff")
	fpsFont         = easel.MustParseFont("20px Arial")
	panelFont       = easel.MustParseFont("14px Arial")
)

// Demo is a gray screen with a logic-rate FPS counter in the top right and a
// black text panel at the bottom that slides in and types out ExampleText.
type Demo struct {
	// SlideIn is how long the panel takes to slide into place. Zero shows
	// it in place from the first frame.
	SlideIn time.Duration

	// Clock, when set, times the FPS counter from raw timestamps. Left nil
	// the counter reads the dt handed to Update, which the Game clamps to
	// its MaxDelta, so it never shows less than 1s/MaxDelta.
	Clock easel.Clock

	fps    easel.FPSMeter
	writer *Typewriter
	slide  float64 // 1 = fully below the screen, 0 = in place
	tween  *easel.TweenGroup
}

// NewDemo returns the demo scene with a half-second panel slide.
func NewDemo() *Demo {
	return &Demo{
		SlideIn: 500 * time.Millisecond,
		writer:  NewTypewriter(ExampleText),
	}
}

// Typewriter returns the panel's typewriter.
func (d *Demo) Typewriter() *Typewriter { return d.writer }

// FPS returns the smoothed logic rate shown by the counter.
func (d *Demo) FPS() int { return d.fps.FPS() }

// Update implements easel.Scene.
func (d *Demo) Update(dt time.Duration) error {
	if d.tween == nil && d.SlideIn > 0 {
		d.slide = 1
		d.tween = easel.NewTweenGroup([]*float64{&d.slide}, []float64{0}, d.SlideIn, ease.OutCubic)
	}
	if d.tween != nil {
		d.tween.Update(dt)
	}
	if d.Clock != nil {
		d.fps.Tick(d.Clock.Now())
	} else if dt > 0 {
		d.fps.Observe(dt)
	}
	d.writer.Tick()
	return nil
}

// Renderables implements easel.Scene.
func (d *Demo) Renderables(width, height int) []easel.Renderable {
	w, h := float64(width), float64(height)
	offset := d.slide * h
	return []easel.Renderable{
		easel.ColorFill{
			Fill:   backgroundColor,
			Extent: easel.Vec2{X: w, Y: h},
		},
		easel.Text{
			Color:   fpsColor,
			Font:    fpsFont,
			Origin:  easel.Vec2{X: w - 100, Y: 100},
			Content: fmt.Sprintf("FPS: %d", d.fps.FPS()),
		},
		easel.ColorFill{
			Fill:   panelColor,
			Origin: easel.Vec2{X: 100, Y: 500 + offset},
			Extent: easel.Vec2{X: max(w-200, 0), Y: max(h-550, 0)},
		},
		easel.Text{
			Color:   panelTextColor,
			Font:    panelFont,
			Origin:  easel.Vec2{X: 120, Y: 520 + offset},
			Content: d.writer.Text(),
		},
	}
}
