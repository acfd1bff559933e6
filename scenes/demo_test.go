package scenes

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/phanxgames/easel"
)

func TestDemoLayout(t *testing.T) {
	d := NewDemo()
	d.SlideIn = 0
	for i := 0; i < 4; i++ {
		if err := d.Update(time.Second / 60); err != nil {
			t.Fatal(err)
		}
	}
	items := d.Renderables(800, 600)
	if len(items) != 4 {
		t.Fatalf("len = %d, want 4", len(items))
	}

	bg := items[0].(easel.ColorFill)
	if bg.Fill.Hex() != "#7e7e7e" || bg.Extent != (easel.Vec2{X: 800, Y: 600}) {
		t.Errorf("background = %+v", bg)
	}
	fps := items[1].(easel.Text)
	if fps.Origin != (easel.Vec2{X: 700, Y: 100}) || fps.Font.String() != "20px Arial" || fps.Color.Hex() != "#ff0000" {
		t.Errorf("fps text = %+v", fps)
	}
	if !strings.HasPrefix(fps.Content, "FPS: ") || fps.Content == "FPS: 0" {
		t.Errorf("fps content = %q, want a measured rate", fps.Content)
	}
	panel := items[2].(easel.ColorFill)
	if panel.Origin != (easel.Vec2{X: 100, Y: 500}) || panel.Extent != (easel.Vec2{X: 600, Y: 50}) || panel.Fill.Hex() != "#000000" {
		t.Errorf("panel = %+v", panel)
	}
	text := items[3].(easel.Text)
	if text.Origin != (easel.Vec2{X: 120, Y: 520}) || text.Font.String() != "14px Arial" || text.Content != "T" {
		t.Errorf("panel text = %+v", text)
	}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			t.Errorf("items[%d] invalid: %v", i, err)
		}
	}
}

func TestDemoPanelSlidesIn(t *testing.T) {
	d := NewDemo()
	_ = d.Update(0)
	start := d.Renderables(800, 600)[2].(easel.ColorFill).Origin.Y
	if start <= 500 {
		t.Errorf("panel starts at y = %v, want below its resting place", start)
	}
	for i := 0; i < 60; i++ {
		_ = d.Update(time.Second / 60)
	}
	if y := d.Renderables(800, 600)[2].(easel.ColorFill).Origin.Y; y < 499.5 || y > 500.5 {
		t.Errorf("panel y after slide = %v, want 500", y)
	}
}

func TestDemoFPSFollowsClock(t *testing.T) {
	const clamped = 60 * time.Millisecond
	tests := []struct {
		name     string
		clock    bool
		min, max int
	}{
		{"clamped dt", false, 16, 17},
		{"raw timestamps", true, 5, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := easel.NewManualClock(time.Unix(0, 0))
			d := NewDemo()
			if tt.clock {
				d.Clock = clock
			}
			// 200ms between logic ticks; the game would hand Update only 60ms.
			for i := 0; i < 200; i++ {
				clock.Advance(200 * time.Millisecond)
				_ = d.Update(clamped)
			}
			if got := d.FPS(); got < tt.min || got > tt.max {
				t.Errorf("FPS = %d, want %d..%d", got, tt.min, tt.max)
			}
		})
	}
}

func TestDemoSmallSurface(t *testing.T) {
	d := NewDemo()
	for i, it := range d.Renderables(100, 100) {
		if err := it.Validate(); err != nil {
			t.Errorf("items[%d] invalid on a small surface: %v", i, err)
		}
	}
}

func TestDemoHeadless(t *testing.T) {
	h, err := easel.NewHeadless(NewDemo(), easel.HeadlessConfig{Width: 800, Height: 600, MaxFPS: 30})
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()
	if err := h.Advance(time.Second); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	img, _ := h.Snapshot()
	gray := color.NRGBA{R: 0x7e, G: 0x7e, B: 0x7e, A: 255}
	if got := color.NRGBAModel.Convert(img.At(10, 10)); got != gray {
		t.Errorf("background pixel = %v, want %v", got, gray)
	}
	if got := color.NRGBAModel.Convert(img.At(110, 540)); got != (color.NRGBA{A: 255}) {
		t.Errorf("panel pixel = %v, want black", got)
	}
}
