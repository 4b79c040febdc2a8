package internal

import (
	"time"

	"go.uber.org/atomic"
)

// FrameHandle identifies a scheduled frame callback. The zero handle is never
// issued, so drivers use it to mean "nothing scheduled".
type FrameHandle uint64

// FrameFunc runs once on the next frame and receives the frame time.
type FrameFunc func(now time.Time)

// FrameScheduler is the requestAnimationFrame contract the drivers rely on.
// CancelFrame must be safe to call with a handle that already ran, was
// already cancelled, or is zero.
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameHandle
	CancelFrame(handle FrameHandle)
}

// FrameLoop is a FrameScheduler pumped by the host once per displayed frame.
// Callbacks requested while a pump is running are deferred to the next pump,
// which keeps a driver that reschedules itself at exactly one tick per frame.
// It is not safe for concurrent use; hosts pump it from their event loop.
type FrameLoop struct {
	nextID  atomic.Uint64
	pending map[FrameHandle]FrameFunc
	order   []FrameHandle
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{
		pending: make(map[FrameHandle]FrameFunc),
	}
}

func (l *FrameLoop) RequestFrame(fn FrameFunc) FrameHandle {
	handle := FrameHandle(l.nextID.Inc())
	l.pending[handle] = fn
	l.order = append(l.order, handle)
	return handle
}

func (l *FrameLoop) CancelFrame(handle FrameHandle) {
	if handle == 0 {
		return
	}
	delete(l.pending, handle)
}

// Pump runs every callback that was scheduled before the call, in request
// order, and returns how many ran.
func (l *FrameLoop) Pump(now time.Time) int {
	batch := l.order
	l.order = nil

	ran := 0
	for _, handle := range batch {
		fn, ok := l.pending[handle]
		if !ok {
			continue
		}
		delete(l.pending, handle)
		fn(now)
		ran++
	}
	return ran
}

// Pending returns the number of callbacks waiting for the next pump.
func (l *FrameLoop) Pending() int {
	return len(l.pending)
}
