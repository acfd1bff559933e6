package easel

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	whitePixelOnce sync.Once
	whitePixel     *ebiten.Image

	goTextOnce   sync.Once
	goTextSource *text.GoTextFaceSource
	goTextErr    error
)

// ebitenWhitePixel returns a 1x1 white image. Solid rectangles are drawn by
// scaling it and tinting with the fill color.
func ebitenWhitePixel() *ebiten.Image {
	whitePixelOnce.Do(func() {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	})
	return whitePixel
}

// defaultGoTextSource returns the Go Regular face source used for families
// that were never registered.
func defaultGoTextSource() (*text.GoTextFaceSource, error) {
	goTextOnce.Do(func() {
		goTextSource, goTextErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	return goTextSource, goTextErr
}

// ImageSurface draws onto an *ebiten.Image. The image keeps its contents
// between frames, like an HTML canvas: nothing is cleared unless a
// renderable paints over it.
//
// All methods must be called from the goroutine that owns the ebiten game
// loop once the game is running.
type ImageSurface struct {
	img      *ebiten.Image
	fill     Color
	font     Font
	families map[string]*text.GoTextFaceSource
	op       ebiten.DrawImageOptions
	owned    bool // img was allocated here and may be deallocated
}

// NewImageSurface creates a surface backed by a new w x h image.
func NewImageSurface(w, h int) *ImageSurface {
	s := NewImageSurfaceFor(ebiten.NewImage(w, h))
	s.owned = true
	return s
}

// NewImageSurfaceFor creates a surface drawing onto img.
func NewImageSurfaceFor(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{
		img:  img,
		fill: ColorBlack,
		font: DefaultFont,
	}
}

// Image returns the backing image.
func (s *ImageSurface) Image() *ebiten.Image { return s.img }

// Resize replaces the backing image with a w x h one, keeping the overlapping
// part of the old contents. An image passed to NewImageSurfaceFor is left
// allocated; the caller still owns it.
func (s *ImageSurface) Resize(w, h int) {
	b := s.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return
	}
	next := ebiten.NewImage(w, h)
	next.DrawImage(s.img, nil)
	if s.owned {
		s.img.Deallocate()
	}
	s.img = next
	s.owned = true
}

// RegisterFamily makes FillText use src for fonts whose family matches
// name, case-insensitively.
func (s *ImageSurface) RegisterFamily(name string, src *text.GoTextFaceSource) {
	if s.families == nil {
		s.families = make(map[string]*text.GoTextFaceSource)
	}
	s.families[strings.ToLower(name)] = src
}

// SetFillStyle implements Surface.
func (s *ImageSurface) SetFillStyle(c Color) { s.fill = c }

// SetFont implements Surface.
func (s *ImageSurface) SetFont(f Font) { s.font = f }

// FillRect implements Surface.
func (s *ImageSurface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Scale(w, h)
	s.op.GeoM.Translate(x, y)
	s.op.ColorScale.Reset()
	s.op.ColorScale.ScaleWithColor(s.fill.RGBA())
	s.img.DrawImage(ebitenWhitePixel(), &s.op)
}

// FillText implements Surface. (x, y) is the left end of the baseline.
func (s *ImageSurface) FillText(str string, x, y float64) {
	if str == "" {
		return
	}
	src := s.families[strings.ToLower(s.font.Family)]
	if src == nil {
		var err error
		if src, err = defaultGoTextSource(); err != nil {
			Logger().Warn("easel: no font source", "family", s.font.Family, "err", err)
			return
		}
	}
	face := &text.GoTextFace{Source: src, Size: s.font.Size}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(s.fill.RGBA())
	text.Draw(s.img, str, face, op)
}

// DrawImage implements Surface. Images that are not already *ebiten.Image
// are uploaded for this call only.
func (s *ImageSurface) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	src, ok := img.(*ebiten.Image)
	if !ok {
		src = ebiten.NewImageFromImage(img)
		defer src.Deallocate()
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	s.op.GeoM.Translate(x, y)
	s.op.ColorScale.Reset()
	s.img.DrawImage(src, &s.op)
}

// Width implements Surface.
func (s *ImageSurface) Width() int { return s.img.Bounds().Dx() }

// Height implements Surface.
func (s *ImageSurface) Height() int { return s.img.Bounds().Dy() }
