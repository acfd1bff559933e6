package easel

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	ggFontOnce   sync.Once
	ggFontSource *text.FontSource
	ggFontErr    error
)

func defaultGGFontSource() (*text.FontSource, error) {
	ggFontOnce.Do(func() {
		ggFontSource, ggFontErr = text.NewFontSource(goregular.TTF)
	})
	return ggFontSource, ggFontErr
}

// SoftwareSurface rasterizes on the CPU with gg. It needs no window or GPU,
// which makes it the surface for headless runs, screenshots and pixel tests.
type SoftwareSurface struct {
	dc       *gg.Context
	fill     Color
	font     Font
	families map[string]*text.FontSource
}

// NewSoftwareSurface creates a transparent w x h surface.
func NewSoftwareSurface(w, h int) *SoftwareSurface {
	return &SoftwareSurface{
		dc:   gg.NewContext(w, h),
		fill: ColorBlack,
		font: DefaultFont,
	}
}

// Context returns the underlying gg context.
func (s *SoftwareSurface) Context() *gg.Context { return s.dc }

// RegisterFamily makes FillText use src for fonts whose family matches
// name, case-insensitively. Unregistered families fall back to Go Regular.
func (s *SoftwareSurface) RegisterFamily(name string, src *text.FontSource) {
	if s.families == nil {
		s.families = make(map[string]*text.FontSource)
	}
	s.families[strings.ToLower(name)] = src
}

// Resize changes the surface size. The contents are discarded.
func (s *SoftwareSurface) Resize(w, h int) error {
	if err := s.dc.Resize(w, h); err != nil {
		return fmt.Errorf("easel: resize software surface: %w", err)
	}
	return nil
}

// Snapshot returns the current pixels.
func (s *SoftwareSurface) Snapshot() image.Image { return s.dc.Image() }

// SavePNG writes the current pixels to path.
func (s *SoftwareSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("easel: save %s: %w", path, err)
	}
	return nil
}

// Close releases the context's resources.
func (s *SoftwareSurface) Close() error { return s.dc.Close() }

// SetFillStyle implements Surface.
func (s *SoftwareSurface) SetFillStyle(c Color) { s.fill = c }

// SetFont implements Surface.
func (s *SoftwareSurface) SetFont(f Font) { s.font = f }

// FillRect implements Surface.
func (s *SoftwareSurface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.dc.SetColor(s.fill.NRGBA())
	s.dc.DrawRectangle(x, y, w, h)
	if err := s.dc.Fill(); err != nil {
		Logger().Warn("easel: software fill", "err", err)
	}
}

// FillText implements Surface. (x, y) is the left end of the baseline.
func (s *SoftwareSurface) FillText(str string, x, y float64) {
	if str == "" {
		return
	}
	src := s.families[strings.ToLower(s.font.Family)]
	if src == nil {
		var err error
		if src, err = defaultGGFontSource(); err != nil {
			Logger().Warn("easel: no font source", "family", s.font.Family, "err", err)
			return
		}
	}
	s.dc.SetFont(src.Face(s.font.Size))
	s.dc.SetColor(s.fill.NRGBA())
	s.dc.DrawString(str, x, y)
}

// DrawImage implements Surface.
func (s *SoftwareSurface) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || w <= 0 || h <= 0 || img.Bounds().Empty() {
		return
	}
	s.dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:             x,
		Y:             y,
		DstWidth:      w,
		DstHeight:     h,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

// Width implements Surface.
func (s *SoftwareSurface) Width() int { return s.dc.Width() }

// Height implements Surface.
func (s *SoftwareSurface) Height() int { return s.dc.Height() }
