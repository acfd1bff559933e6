package easel

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// TerminalSurface draws onto a tcell screen, treating each cell as one
// pixel. Fills and images paint cell backgrounds; text writes runes in the
// fill color over whatever background the cell already has. Fonts are
// accepted and ignored: a terminal has one glyph size.
//
// Changes become visible when the screen is shown; hook Present into
// Renderer.OnDraw.
type TerminalSurface struct {
	screen tcell.Screen
	fill   Color
}

// NewTerminalSurface creates a surface over an initialized screen.
func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	return &TerminalSurface{screen: screen, fill: ColorBlack}
}

// Screen returns the underlying screen.
func (s *TerminalSurface) Screen() tcell.Screen { return s.screen }

// Present makes the drawn cells visible.
func (s *TerminalSurface) Present() { s.screen.Show() }

// SetFillStyle implements Surface.
func (s *TerminalSurface) SetFillStyle(c Color) { s.fill = c }

// SetFont implements Surface. Terminals have a single font.
func (s *TerminalSurface) SetFont(Font) {}

// FillRect implements Surface. Every cell the rectangle touches is painted.
func (s *TerminalSurface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 || s.fill.A <= 0 {
		return
	}
	x0, y0, x1, y1, ok := s.cellSpan(x, y, w, h)
	if !ok {
		return
	}
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.paint(cx, cy, s.fill)
		}
	}
}

// FillText implements Surface. Text occupies the cell row containing the
// baseline; runes that fall off either edge are clipped.
func (s *TerminalSurface) FillText(str string, x, y float64) {
	sw, sh := s.screen.Size()
	row := int(math.Floor(y))
	if row < 0 || row >= sh {
		return
	}
	fg := toTcell(s.fill)
	col := int(math.Floor(x))
	for _, r := range str {
		cw := runewidth.RuneWidth(r)
		if cw == 0 {
			continue
		}
		if col >= sw {
			return
		}
		if col >= 0 {
			_, _, style, _ := s.screen.GetContent(col, row)
			s.screen.SetContent(col, row, r, nil, style.Foreground(fg))
		}
		col += cw
	}
}

// DrawImage implements Surface. Each covered cell takes the nearest source
// pixel, blended by its alpha over the cell's current background.
func (s *TerminalSurface) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}
	x0, y0, x1, y1, ok := s.cellSpan(x, y, w, h)
	if !ok {
		return
	}
	for cy := y0; cy < y1; cy++ {
		v := (float64(cy) + 0.5 - y) / h
		sy := b.Min.Y + clampInt(int(v*float64(b.Dy())), 0, b.Dy()-1)
		for cx := x0; cx < x1; cx++ {
			u := (float64(cx) + 0.5 - x) / w
			sx := b.Min.X + clampInt(int(u*float64(b.Dx())), 0, b.Dx()-1)
			s.paint(cx, cy, ColorFromStd(img.At(sx, sy)))
		}
	}
}

// Width implements Surface.
func (s *TerminalSurface) Width() int {
	w, _ := s.screen.Size()
	return w
}

// Height implements Surface.
func (s *TerminalSurface) Height() int {
	_, h := s.screen.Size()
	return h
}

// cellSpan converts a pixel rectangle to the half-open cell range it touches,
// clipped to the screen.
func (s *TerminalSurface) cellSpan(x, y, w, h float64) (x0, y0, x1, y1 int, ok bool) {
	sw, sh := s.screen.Size()
	x0 = clampInt(int(math.Floor(x)), 0, sw)
	y0 = clampInt(int(math.Floor(y)), 0, sh)
	x1 = clampInt(int(math.Ceil(x+w)), 0, sw)
	y1 = clampInt(int(math.Ceil(y+h)), 0, sh)
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

// paint sets the cell background to c composited over the existing
// background and clears its rune.
func (s *TerminalSurface) paint(cx, cy int, c Color) {
	if c.A <= 0 {
		return
	}
	_, _, style, _ := s.screen.GetContent(cx, cy)
	if c.A < 1 {
		_, bg, _ := style.Decompose()
		if bg.Valid() && bg != tcell.ColorDefault {
			r, g, b := bg.RGB()
			under := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
			over := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
			mixed := under.BlendRgb(over, c.A)
			c = Color{R: mixed.R, G: mixed.G, B: mixed.B, A: 1}
		}
	}
	s.screen.SetContent(cx, cy, ' ', nil, style.Background(toTcell(c)))
}

func toTcell(c Color) tcell.Color {
	n := c.NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
