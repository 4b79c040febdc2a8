package glide

import "github.com/BrandonKowalski/glide/pkg/glide/internal"

// FrameLoop schedules per-frame callbacks. Hosts call Pump once per
// displayed frame.
type FrameLoop = internal.FrameLoop

// FrameScheduler is the requestAnimationFrame contract used by the drivers.
type FrameScheduler = internal.FrameScheduler

// Clock supplies the current time to the controller.
type Clock = internal.Clock

// SystemClock reads the wall clock.
type SystemClock = internal.SystemClock

// NewFrameLoop creates an empty frame loop.
func NewFrameLoop() *FrameLoop {
	return internal.NewFrameLoop()
}
