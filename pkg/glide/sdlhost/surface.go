package sdlhost

import (
	"github.com/BrandonKowalski/glide/pkg/glide"
)

// pageSurface is the scrollable document as the controller sees it. Like a
// browser viewport it clamps every write and reports changes as EventScroll.
type pageSurface struct {
	offset   float64
	layout   func() *Layout
	viewport func() int32
	events   *glide.Dispatcher
}

func (s *pageSurface) ScrollOffset() float64 {
	return s.offset
}

func (s *pageSurface) SetScrollOffset(y float64) {
	y = s.clamp(y)
	if y == s.offset {
		return
	}
	s.offset = y
	s.events.Dispatch(glide.Event{Kind: glide.EventScroll})
}

func (s *pageSurface) ContentHeight() float64 {
	if l := s.layout(); l != nil {
		return float64(l.ContentHeight)
	}
	return 0
}

func (s *pageSurface) ViewportHeight() float64 {
	return float64(s.viewport())
}

// reclamp pulls the offset back into range after the geometry shrank.
func (s *pageSurface) reclamp() {
	s.SetScrollOffset(s.offset)
}

func (s *pageSurface) clamp(y float64) float64 {
	maxScroll := s.ContentHeight() - s.ViewportHeight()
	if maxScroll <= 0 || y < 0 {
		return 0
	}
	if y > maxScroll {
		return maxScroll
	}
	return y
}
