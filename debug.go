package easel

import "fmt"

// debugLog writes the most recent frame's stats at debug level.
// Called with drawMu held.
func (r *Renderer) debugLog() {
	s := &r.stats
	Logger().Debug("easel: frame",
		"frame", s.Frames,
		"items", s.LastSize,
		"draw", s.LastDraw,
		"colors", s.Colors,
		"texts", s.Texts,
		"textures", s.Textures,
		"ignored", s.Ignored,
	)
}

// debugCheckRenderable panics with a descriptive message when item would
// reach the surface with missing or malformed attributes. Only called in
// debug mode; release builds let the surface receive whatever it is given.
func debugCheckRenderable(item Renderable) {
	if item == nil {
		panic("easel debug: nil renderable enqueued")
	}
	if err := item.Validate(); err != nil {
		panic(fmt.Sprintf("easel debug: malformed %s renderable: %v", item.Kind(), err))
	}
}
