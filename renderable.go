package easel

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrInvalidRenderable is returned when a Renderable is missing or carries a
// malformed attribute for its kind.
var ErrInvalidRenderable = errors.New("invalid renderable")

// Renderable is an immutable descriptor of one drawable unit for a single
// frame. The set of implementations is closed: ColorFill, Text and Texture.
// Adding a kind means adding a type here and a case to Renderer.drawItem.
type Renderable interface {
	Kind() Kind
	// Validate reports whether every attribute required by the kind is
	// present and well-formed.
	Validate() error

	renderable()
}

// ColorFill fills an axis-aligned rectangle with a solid color.
// Extent is the rectangle's width and height.
type ColorFill struct {
	Fill   Color
	Origin Vec2
	Extent Vec2
}

// NewColorFill returns a validated ColorFill.
func NewColorFill(fill Color, origin, extent Vec2) (ColorFill, error) {
	c := ColorFill{Fill: fill, Origin: origin, Extent: extent}
	return c, c.Validate()
}

// Kind returns KindColor.
func (ColorFill) Kind() Kind { return KindColor }

// Validate checks that origin and extent are finite and extent is non-negative.
func (c ColorFill) Validate() error {
	if err := validateRect(c.Origin, c.Extent); err != nil {
		return fmt.Errorf("easel: color fill: %w", err)
	}
	return nil
}

func (ColorFill) renderable() {}

// Text draws one line of text. Origin is the left end of the baseline.
type Text struct {
	Color   Color
	Font    Font
	Origin  Vec2
	Content string
}

// NewText returns a validated Text.
func NewText(c Color, font Font, origin Vec2, content string) (Text, error) {
	t := Text{Color: c, Font: font, Origin: origin, Content: content}
	return t, t.Validate()
}

// Kind returns KindText.
func (Text) Kind() Kind { return KindText }

// Validate checks the origin and that the font has a family and a positive size.
func (t Text) Validate() error {
	if !t.Origin.finite() {
		return fmt.Errorf("easel: text: non-finite origin %v: %w", t.Origin, ErrInvalidRenderable)
	}
	if t.Font.Family == "" || !(t.Font.Size > 0) || math.IsInf(t.Font.Size, 0) {
		return fmt.Errorf("easel: text: bad font %q: %w", t.Font.String(), ErrInvalidRenderable)
	}
	return nil
}

func (Text) renderable() {}

// Texture blits an externally owned image into the destination rectangle
// at Origin with size Extent.
type Texture struct {
	Image  image.Image
	Origin Vec2
	Extent Vec2
}

// NewTexture returns a validated Texture.
func NewTexture(img image.Image, origin, extent Vec2) (Texture, error) {
	t := Texture{Image: img, Origin: origin, Extent: extent}
	return t, t.Validate()
}

// Kind returns KindTexture.
func (Texture) Kind() Kind { return KindTexture }

// Validate checks that an image is present and the destination rectangle is sane.
func (t Texture) Validate() error {
	if t.Image == nil {
		return fmt.Errorf("easel: texture: nil image: %w", ErrInvalidRenderable)
	}
	if err := validateRect(t.Origin, t.Extent); err != nil {
		return fmt.Errorf("easel: texture: %w", err)
	}
	return nil
}

func (Texture) renderable() {}

func validateRect(origin, extent Vec2) error {
	if !origin.finite() {
		return fmt.Errorf("non-finite origin %v: %w", origin, ErrInvalidRenderable)
	}
	if !extent.finite() {
		return fmt.Errorf("non-finite extent %v: %w", extent, ErrInvalidRenderable)
	}
	if extent.X < 0 || extent.Y < 0 {
		return fmt.Errorf("negative extent %v: %w", extent, ErrInvalidRenderable)
	}
	return nil
}
