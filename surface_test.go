package easel

import (
	"fmt"
	"image"
	"sync"
)

// recordingSurface records every call it receives as a string.
type recordingSurface struct {
	mu    sync.Mutex
	w, h  int
	calls []string
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) record(format string, args ...any) {
	s.mu.Lock()
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
	s.mu.Unlock()
}

func (s *recordingSurface) SetFillStyle(c Color) { s.record("fill %s", c.Hex()) }
func (s *recordingSurface) SetFont(f Font)       { s.record("font %s", f) }
func (s *recordingSurface) FillRect(x, y, w, h float64) {
	s.record("rect %g,%g %gx%g", x, y, w, h)
}
func (s *recordingSurface) FillText(str string, x, y float64) {
	s.record("text %q %g,%g", str, x, y)
}
func (s *recordingSurface) DrawImage(img image.Image, x, y, w, h float64) {
	s.record("image %v %g,%g %gx%g", img.Bounds().Size(), x, y, w, h)
}

func (s *recordingSurface) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w
}

func (s *recordingSurface) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h
}

func (s *recordingSurface) resize(w, h int) {
	s.mu.Lock()
	s.w, s.h = w, h
	s.mu.Unlock()
}

// take returns and clears the recorded calls.
func (s *recordingSurface) take() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.calls
	s.calls = nil
	return out
}

var _ Surface = (*recordingSurface)(nil)
