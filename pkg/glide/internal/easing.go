package internal

import (
	"math"
	"time"
)

// Viewport is the live scroll surface as the drivers see it. MaxScroll is
// read at every use so resizes are picked up without invalidation.
type Viewport interface {
	ScrollOffset() float64
	SetScrollOffset(y float64)
	MaxScroll() float64
}

// Track is the animated position pair shared by both drivers.
type Track struct {
	Current float64
	Target  float64
}

// EasingDriver moves Track.Current a fixed fraction of the way to
// Track.Target every frame until it is within epsilon, then snaps and stops.
type EasingDriver struct {
	track   *Track
	view    Viewport
	frames  FrameScheduler
	ease    float64
	epsilon float64

	running  bool
	handle   FrameHandle
	onSettle func()
}

func NewEasingDriver(track *Track, view Viewport, frames FrameScheduler, ease, epsilon float64) *EasingDriver {
	return &EasingDriver{
		track:   track,
		view:    view,
		frames:  frames,
		ease:    ease,
		epsilon: epsilon,
	}
}

// OnSettle registers a callback that runs when the drift reaches its target.
func (d *EasingDriver) OnSettle(fn func()) {
	d.onSettle = fn
}

func (d *EasingDriver) Running() bool {
	return d.running
}

// Start begins drifting from the live surface offset. It is a no-op while
// already running.
func (d *EasingDriver) Start() {
	if d.running {
		return
	}
	d.running = true
	d.track.Current = Clamp(d.view.ScrollOffset(), d.view.MaxScroll())
	d.handle = d.frames.RequestFrame(d.tick)
}

// Stop cancels the pending tick without touching the position.
func (d *EasingDriver) Stop() {
	d.frames.CancelFrame(d.handle)
	d.handle = 0
	d.running = false
}

func (d *EasingDriver) tick(time.Time) {
	d.handle = 0
	if !d.running {
		return
	}

	maxScroll := d.view.MaxScroll()
	d.track.Target = Clamp(d.track.Target, maxScroll)
	d.track.Current = Clamp(d.track.Current, maxScroll)

	diff := d.track.Target - d.track.Current
	if math.Abs(diff) < d.epsilon {
		d.track.Current = d.track.Target
		d.running = false
		d.view.SetScrollOffset(d.track.Current)
		if d.onSettle != nil {
			d.onSettle()
		}
		return
	}

	d.track.Current += diff * d.ease
	d.handle = d.frames.RequestFrame(d.tick)
	d.view.SetScrollOffset(d.track.Current)
}
