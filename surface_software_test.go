package easel

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func pixelAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestSoftwareSurfaceFillRect(t *testing.T) {
	s := NewSoftwareSurface(8, 8)
	defer s.Close()
	s.SetFillStyle(MustParseColor("#ff0000"))
	s.FillRect(2, 2, 4, 4)

	img := s.Snapshot()
	if got := pixelAt(img, 3, 3); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("inside = %+v, want opaque red", got)
	}
	if got := pixelAt(img, 0, 0); got.A != 0 {
		t.Errorf("outside = %+v, want transparent", got)
	}
}

func TestSoftwareSurfaceLaterFillsPaintOver(t *testing.T) {
	s := NewSoftwareSurface(4, 4)
	defer s.Close()
	r, err := NewRenderer(s, 60)
	if err != nil {
		t.Fatal(err)
	}
	r.Enqueue(ColorFill{Fill: ColorBlack, Extent: Vec2{4, 4}})
	r.Enqueue(ColorFill{Fill: ColorWhite, Origin: Vec2{2, 0}, Extent: Vec2{2, 4}})
	r.Draw()

	img := s.Snapshot()
	if got := pixelAt(img, 0, 1); got != (color.NRGBA{A: 255}) {
		t.Errorf("left = %+v, want black", got)
	}
	if got := pixelAt(img, 3, 1); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("right = %+v, want white", got)
	}
}

func TestSoftwareSurfaceFillText(t *testing.T) {
	s := NewSoftwareSurface(64, 32)
	defer s.Close()
	s.SetFillStyle(ColorWhite)
	s.SetFont(MustParseFont("20px Arial"))
	s.FillText("W", 4, 24)

	img := s.Snapshot()
	inked := 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if pixelAt(img, x, y).A > 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("FillText drew nothing")
	}
	// Glyphs sit above the baseline.
	for x := 0; x < 64; x++ {
		if pixelAt(img, x, 30).A > 0 {
			t.Fatalf("ink below the baseline at (%d,30)", x)
		}
	}
}

func TestSoftwareSurfaceDrawImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})

	s := NewSoftwareSurface(8, 8)
	defer s.Close()
	s.DrawImage(src, 2, 2, 4, 4)

	img := s.Snapshot()
	if got := pixelAt(img, 4, 4); got.G < 250 || got.A < 250 {
		t.Errorf("center = %+v, want green", got)
	}
	if got := pixelAt(img, 7, 7); got.A != 0 {
		t.Errorf("outside = %+v, want transparent", got)
	}
}

func TestSoftwareSurfaceResize(t *testing.T) {
	s := NewSoftwareSurface(8, 8)
	defer s.Close()
	if err := s.Resize(16, 4); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if s.Width() != 16 || s.Height() != 4 {
		t.Errorf("size = %dx%d, want 16x4", s.Width(), s.Height())
	}
}

func TestSoftwareSurfaceSavePNG(t *testing.T) {
	s := NewSoftwareSurface(2, 2)
	defer s.Close()
	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}
