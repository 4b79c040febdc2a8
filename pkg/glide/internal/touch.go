package internal

import "time"

// TouchGesture tracks one finger from touch start to release. Velocity is in
// pixels per millisecond; positive means the content scrolls forward (the
// finger moved up the screen).
type TouchGesture struct {
	StartY      float64
	StartScroll float64
	LastY       float64
	LastTime    time.Time
	Velocity    float64
}

// BeginGesture records the finger position and the scroll offset the drag is
// measured from.
func BeginGesture(touchY, startScroll float64, now time.Time) *TouchGesture {
	return &TouchGesture{
		StartY:      touchY,
		StartScroll: startScroll,
		LastY:       touchY,
		LastTime:    now,
	}
}

// Move folds a new sample into the velocity estimate and returns the dragged
// target offset, already clamped.
func (g *TouchGesture) Move(touchY float64, now time.Time, dragGain, maxScroll float64) float64 {
	dy := g.LastY - touchY
	if dt := Millis(now.Sub(g.LastTime)); dt > 0 {
		g.Velocity = dy / dt
	}
	g.LastY = touchY
	g.LastTime = now

	return Clamp(g.StartScroll+(g.StartY-touchY)*dragGain, maxScroll)
}

// Release projects the momentum impulse onto target.
func (g *TouchGesture) Release(target, momentumGain, maxScroll float64) float64 {
	return Clamp(target+g.Velocity*momentumGain, maxScroll)
}
