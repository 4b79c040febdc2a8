package sdlhost

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// ticksClock reports time on SDL's millisecond tick counter so that frame
// times and tween start times share one source.
type ticksClock struct {
	epoch time.Time
}

func newTicksClock() ticksClock {
	return ticksClock{epoch: time.Now().Add(-time.Duration(sdl.GetTicks64()) * time.Millisecond)}
}

func (c ticksClock) Now() time.Time {
	return c.epoch.Add(time.Duration(sdl.GetTicks64()) * time.Millisecond)
}
