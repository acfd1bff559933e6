package easel

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimSurface(t *testing.T, w, h int) (*TerminalSurface, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(w, h)
	return NewTerminalSurface(sim), sim
}

func cellBG(sim tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := sim.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestTerminalSurfaceSize(t *testing.T) {
	s, sim := newSimSurface(t, 20, 8)
	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("size = %dx%d, want 20x8", s.Width(), s.Height())
	}
	sim.SetSize(30, 10)
	if s.Width() != 30 || s.Height() != 10 {
		t.Errorf("size after resize = %dx%d, want 30x10", s.Width(), s.Height())
	}
}

func TestTerminalSurfaceFillRect(t *testing.T) {
	s, sim := newSimSurface(t, 10, 5)
	s.SetFillStyle(MustParseColor("red"))
	s.FillRect(1, 1, 3, 2)

	red := tcell.NewRGBColor(255, 0, 0)
	tests := []struct {
		x, y   int
		inside bool
	}{
		{1, 1, true}, {3, 2, true}, {0, 0, false}, {4, 1, false}, {1, 3, false},
	}
	for _, tt := range tests {
		got := cellBG(sim, tt.x, tt.y)
		if (got == red) != tt.inside {
			t.Errorf("cell (%d,%d) bg = %v, inside = %v", tt.x, tt.y, got, tt.inside)
		}
	}
}

func TestTerminalSurfaceFillRectClipped(t *testing.T) {
	s, sim := newSimSurface(t, 4, 4)
	s.SetFillStyle(ColorWhite)
	s.FillRect(-10, -10, 100, 100)
	if got := cellBG(sim, 3, 3); got != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("corner bg = %v, want white", got)
	}
}

func TestTerminalSurfaceAlphaBlend(t *testing.T) {
	s, sim := newSimSurface(t, 2, 1)
	s.SetFillStyle(ColorBlack)
	s.FillRect(0, 0, 2, 1)
	s.SetFillStyle(Color{R: 1, A: 0.5})
	s.FillRect(0, 0, 1, 1)

	r, g, b := cellBG(sim, 0, 0).RGB()
	if r < 126 || r > 129 || g != 0 || b != 0 {
		t.Errorf("blended bg = (%d,%d,%d), want ~(128,0,0)", r, g, b)
	}
}

func TestTerminalSurfaceFillText(t *testing.T) {
	s, sim := newSimSurface(t, 5, 2)
	s.SetFillStyle(ColorBlack)
	s.FillRect(0, 0, 5, 2)
	s.SetFillStyle(ColorWhite)
	s.FillText("hello world", 1, 1.7)

	for i, want := range "hell" {
		r, _, style, _ := sim.GetContent(1+i, 1)
		if r != want {
			t.Errorf("cell %d = %q, want %q", 1+i, r, want)
		}
		fg, bg, _ := style.Decompose()
		if fg != tcell.NewRGBColor(255, 255, 255) {
			t.Errorf("cell %d fg = %v, want white", 1+i, fg)
		}
		if bg != tcell.NewRGBColor(0, 0, 0) {
			t.Errorf("cell %d bg = %v, want the fill's black", 1+i, bg)
		}
	}
	if r, _, _, _ := sim.GetContent(0, 0); r != ' ' {
		t.Errorf("row 0 = %q, want the blank fill", r)
	}
}

func TestTerminalSurfaceDrawImage(t *testing.T) {
	s, sim := newSimSurface(t, 4, 2)
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})
	s.DrawImage(img, 0, 0, 4, 2)

	red, blue := tcell.NewRGBColor(255, 0, 0), tcell.NewRGBColor(0, 0, 255)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := red
			if x >= 2 {
				want = blue
			}
			if got := cellBG(sim, x, y); got != want {
				t.Errorf("cell (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestTerminalSurfaceWithRenderer(t *testing.T) {
	s, sim := newSimSurface(t, 8, 4)
	r, err := NewRenderer(s, 30)
	if err != nil {
		t.Fatal(err)
	}
	shown := 0
	r.OnDraw(func() { s.Present(); shown++ })
	r.Enqueue(ColorFill{Fill: MustParseColor("#00ff00"), Extent: Vec2{float64(r.Width()), float64(r.Height())}})
	r.Draw()

	if shown != 1 {
		t.Errorf("Present calls = %d, want 1", shown)
	}
	if got := cellBG(sim, 7, 3); got != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("bg = %v, want green", got)
	}
}
