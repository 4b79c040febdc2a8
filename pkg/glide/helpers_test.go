package glide

import (
	"time"
)

type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// pageSurface behaves like a document: every offset change is reported back
// as a native scroll notification.
type pageSurface struct {
	offset   float64
	content  float64
	viewport float64
	events   *Dispatcher
	writes   int
}

func (p *pageSurface) ScrollOffset() float64   { return p.offset }
func (p *pageSurface) ContentHeight() float64  { return p.content }
func (p *pageSurface) ViewportHeight() float64 { return p.viewport }

func (p *pageSurface) SetScrollOffset(y float64) {
	p.writes++
	if y == p.offset {
		return
	}
	p.offset = y
	p.events.Dispatch(Event{Kind: EventScroll})
}

type fixture struct {
	surface *pageSurface
	events  *Dispatcher
	frames  *FrameLoop
	clock   *manualClock
	ctrl    *Controller
}

type staticAnchors map[string]float64

func (a staticAnchors) ElementOffset(id string) (float64, bool) {
	top, ok := a[id]
	return top, ok
}

// newFixture builds an attached controller over a 5800px page in an 800px
// viewport, so maxScroll is 5000.
func newFixture(cfg Config) *fixture {
	events := NewDispatcher()
	f := &fixture{
		surface: &pageSurface{content: 5800, viewport: 800, events: events},
		events:  events,
		frames:  NewFrameLoop(),
		clock:   newManualClock(),
	}

	ctrl, err := NewController(f.surface, events, ControllerOptions{
		Config: cfg,
		Frames: f.frames,
		Clock:  f.clock,
		Anchors: staticAnchors{
			"about":    1080,
			"projects": 2480,
			"contact":  9000,
		},
	})
	if err != nil {
		panic(err)
	}
	ctrl.Attach()
	f.ctrl = ctrl
	return f
}

// frame advances one 16ms frame.
func (f *fixture) frame() {
	f.frames.Pump(f.clock.Advance(16 * time.Millisecond))
}

// settle pumps frames until nothing animates, up to a bound.
func (f *fixture) settle() int {
	n := 0
	for f.ctrl.Authority() != AuthorityIdle && n < 10000 {
		f.frame()
		n++
	}
	return n
}
