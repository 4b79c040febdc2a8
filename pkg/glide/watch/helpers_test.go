package watch

import (
	"time"

	"github.com/BrandonKowalski/glide/pkg/glide"
)

type page struct {
	offset   float64
	content  float64
	viewport float64
	events   *glide.Dispatcher
}

func (p *page) ScrollOffset() float64   { return p.offset }
func (p *page) ContentHeight() float64  { return p.content }
func (p *page) ViewportHeight() float64 { return p.viewport }

func (p *page) SetScrollOffset(y float64) {
	p.offset = y
	p.events.Dispatch(glide.Event{Kind: glide.EventScroll})
}

func nowAfter(frames int) time.Time {
	return time.Now().Add(time.Duration(frames) * 16 * time.Millisecond)
}
