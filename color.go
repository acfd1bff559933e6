package easel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for unrecognized color strings.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses a CSS-style color string. Accepted forms are "#rgb",
// "#rrggbb", "#rrggbbaa", the SVG 1.1 color keywords ("red", "white", ...)
// and "transparent". Matching is case-insensitive.
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return Color{}, fmt.Errorf("easel: parse color %q: %w", s, ErrInvalidColor)
	}
	if v == "transparent" {
		return Color{}, nil
	}
	if !strings.HasPrefix(v, "#") {
		named, ok := colornames.Map[v]
		if !ok {
			return Color{}, fmt.Errorf("easel: parse color %q: unknown name: %w", s, ErrInvalidColor)
		}
		return ColorFromStd(named), nil
	}

	alpha := 1.0
	if len(v) == 9 {
		a, err := strconv.ParseUint(v[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("easel: parse color %q: %w", s, ErrInvalidColor)
		}
		alpha = float64(a) / 255
		v = v[:7]
	}
	if len(v) != 4 && len(v) != 7 {
		return Color{}, fmt.Errorf("easel: parse color %q: bad length: %w", s, ErrInvalidColor)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return Color{}, fmt.Errorf("easel: parse color %q: %v: %w", s, err, ErrInvalidColor)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level color literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when c is not fully opaque.
func (c Color) Hex() string {
	n := c.NRGBA()
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

