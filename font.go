package easel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFont is returned by ParseFont for malformed font descriptors.
var ErrInvalidFont = errors.New("invalid font")

// Font is a single style descriptor naming a family and a pixel size,
// in the form used by CSS font shorthands ("20px Arial").
type Font struct {
	Family string
	Size   float64 // pixels
}

// DefaultFont matches the initial font of an HTML canvas context.
var DefaultFont = Font{Family: "sans-serif", Size: 10}

// ParseFont parses a "<size><unit> <family>" descriptor. Units are "px" and
// "pt" (converted to pixels at 96 DPI). Style and weight keywords preceding
// the size are skipped; the family may be quoted.
func ParseFont(s string) (Font, error) {
	fields := strings.Fields(s)
	for i, f := range fields {
		size, ok := parseFontSize(f)
		if !ok {
			continue
		}
		family := strings.Join(fields[i+1:], " ")
		family = strings.Trim(family, `"'`)
		if family == "" {
			return Font{}, fmt.Errorf("easel: parse font %q: missing family: %w", s, ErrInvalidFont)
		}
		if size <= 0 {
			return Font{}, fmt.Errorf("easel: parse font %q: size must be positive: %w", s, ErrInvalidFont)
		}
		return Font{Family: family, Size: size}, nil
	}
	return Font{}, fmt.Errorf("easel: parse font %q: missing size: %w", s, ErrInvalidFont)
}

// MustParseFont is like ParseFont but panics on error.
func MustParseFont(s string) Font {
	f, err := ParseFont(s)
	if err != nil {
		panic(err)
	}
	return f
}

func parseFontSize(tok string) (float64, bool) {
	scale := 1.0
	switch {
	case strings.HasSuffix(tok, "px"):
		tok = strings.TrimSuffix(tok, "px")
	case strings.HasSuffix(tok, "pt"):
		tok = strings.TrimSuffix(tok, "pt")
		scale = 96.0 / 72.0
	default:
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v * scale, true
}

// String formats f back into descriptor form, e.g. "20px Arial".
func (f Font) String() string {
	return strconv.FormatFloat(f.Size, 'f', -1, 64) + "px " + f.Family
}
