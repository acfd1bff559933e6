package easel

import "image"

// Surface is the 2D drawing target a Renderer owns. It mirrors the subset
// of an HTML canvas 2D context the pipeline needs. Implementations are not
// required to be safe for concurrent use; the Renderer serializes access.
type Surface interface {
	// SetFillStyle sets the color used by FillRect and FillText.
	SetFillStyle(c Color)
	// FillRect fills the rectangle at (x, y) with size (w, h).
	FillRect(x, y, w, h float64)
	// SetFont sets the font used by FillText.
	SetFont(f Font)
	// FillText draws s with its baseline starting at (x, y).
	FillText(s string, x, y float64)
	// DrawImage draws img scaled into the rectangle at (x, y) with size (w, h).
	DrawImage(img image.Image, x, y, w, h float64)
	// Width and Height report the current size of the backing target in
	// pixels. They must reflect resizes.
	Width() int
	Height() int
}
