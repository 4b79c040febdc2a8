package internal

import (
	"math"
	"time"
)

// TweenDuration scales travel time with distance: distance/divisor seconds,
// bounded to [min, max].
func TweenDuration(distance, divisor float64, min, max time.Duration) time.Duration {
	if divisor <= 0 {
		return max
	}
	d := time.Duration(math.Abs(distance) / divisor * float64(time.Second))
	if d < min {
		return min
	}
	if d > max {
		return max
	}
	return d
}

// TweenDriver runs one fixed-duration animation from the live offset to a
// destination, mirroring every step into the shared Track so the easing
// driver resumes from a consistent state afterwards.
type TweenDriver struct {
	track  *Track
	view   Viewport
	frames FrameScheduler
	clock  Clock

	running   bool
	handle    FrameHandle
	from      float64
	dest      float64
	startedAt time.Time
	duration  time.Duration
	curve     Curve
	onDone    func()
}

func NewTweenDriver(track *Track, view Viewport, frames FrameScheduler, clock Clock) *TweenDriver {
	return &TweenDriver{
		track:  track,
		view:   view,
		frames: frames,
		clock:  clock,
	}
}

// OnComplete registers a callback that runs only when a tween reaches its
// destination, never on cancellation.
func (d *TweenDriver) OnComplete(fn func()) {
	d.onDone = fn
}

func (d *TweenDriver) Running() bool {
	return d.running
}

func (d *TweenDriver) Destination() float64 {
	return d.dest
}

// Start cancels any tween in flight and animates from the live offset to
// dest over duration.
func (d *TweenDriver) Start(dest float64, duration time.Duration, curve Curve) {
	d.Cancel()

	if curve == nil {
		curve = DefaultCurve
	}
	d.from = Clamp(d.view.ScrollOffset(), d.view.MaxScroll())
	d.dest = dest
	d.duration = duration
	d.curve = curve
	d.startedAt = d.clock.Now()
	d.running = true
	d.handle = d.frames.RequestFrame(d.step)
}

// Cancel stops the tween where it is. The position keeps the last applied
// step and the completion callback does not run. Safe to call repeatedly.
func (d *TweenDriver) Cancel() {
	d.frames.CancelFrame(d.handle)
	d.handle = 0
	d.running = false
}

// Progress returns the elapsed fraction of the active tween at now.
func (d *TweenDriver) Progress(now time.Time) float64 {
	if d.duration <= 0 {
		return 1
	}
	f := float64(now.Sub(d.startedAt)) / float64(d.duration)
	return math.Max(0, math.Min(1, f))
}

func (d *TweenDriver) step(now time.Time) {
	d.handle = 0
	if !d.running {
		return
	}

	fraction := d.Progress(now)
	if fraction >= 1 {
		d.track.Current = d.dest
		d.track.Target = d.dest
		d.running = false
		d.view.SetScrollOffset(d.dest)
		if d.onDone != nil {
			d.onDone()
		}
		return
	}

	pos := d.from + d.curve(fraction)*(d.dest-d.from)
	d.track.Current = pos
	d.track.Target = pos
	d.handle = d.frames.RequestFrame(d.step)
	d.view.SetScrollOffset(pos)
}
