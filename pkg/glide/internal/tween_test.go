package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTweenDuration_Bounds(t *testing.T) {
	min, max := 400*time.Millisecond, 1200*time.Millisecond

	assert.Equal(t, max, TweenDuration(10000, 1200, min, max))
	assert.Equal(t, min, TweenDuration(10, 1200, min, max))
	assert.Equal(t, min, TweenDuration(-10, 1200, min, max))
	assert.Equal(t, 500*time.Millisecond, TweenDuration(600, 1200, min, max))
	assert.Equal(t, max, TweenDuration(600, 0, min, max))
}

func newTweenFixture(offset float64) (*TweenDriver, *Track, *stubViewport, *FrameLoop, *manualClock) {
	track := &Track{Current: offset, Target: offset}
	view := &stubViewport{offset: offset, content: 5800, viewport: 800}
	loop := NewFrameLoop()
	clock := newManualClock()
	return NewTweenDriver(track, view, loop, clock), track, view, loop, clock
}

func TestTweenDriver_ReachesDestination(t *testing.T) {
	d, track, view, loop, clock := newTweenFixture(0)
	curve, _ := CurveByName("power2.out")

	done := 0
	d.OnComplete(func() { done++ })
	d.Start(2000, 800*time.Millisecond, curve)

	prev := 0.0
	for d.Running() {
		loop.Pump(clock.Advance(16 * time.Millisecond))
		assert.GreaterOrEqual(t, view.offset, prev)
		assert.Equal(t, view.offset, track.Current)
		assert.Equal(t, view.offset, track.Target)
		prev = view.offset
	}

	assert.Equal(t, 1, done)
	assert.Equal(t, 2000.0, track.Current)
	assert.Equal(t, 2000.0, track.Target)
	assert.Equal(t, 0, loop.Pending())
}

func TestTweenDriver_CancelSkipsCompletion(t *testing.T) {
	d, track, view, loop, clock := newTweenFixture(0)

	done := false
	d.OnComplete(func() { done = true })
	d.Start(2000, time.Second, linear)
	loop.Pump(clock.Advance(500 * time.Millisecond))
	mid := view.offset

	d.Cancel()
	d.Cancel()
	loop.Pump(clock.Advance(2 * time.Second))

	assert.False(t, done)
	assert.False(t, d.Running())
	assert.InDelta(t, 1000, mid, 1e-9)
	assert.Equal(t, mid, view.offset)
	assert.Equal(t, mid, track.Current)
}

func TestTweenDriver_RestartReplacesInFlight(t *testing.T) {
	d, _, view, loop, clock := newTweenFixture(0)

	d.Start(2000, time.Second, linear)
	loop.Pump(clock.Advance(250 * time.Millisecond))

	d.Start(100, time.Second, linear)
	assert.Equal(t, 1, loop.Pending())

	for d.Running() {
		loop.Pump(clock.Advance(100 * time.Millisecond))
	}
	assert.Equal(t, 100.0, view.offset)
	assert.Equal(t, 100.0, d.Destination())
}

func TestTweenDriver_NilCurveEasesOut(t *testing.T) {
	d, _, view, loop, clock := newTweenFixture(0)

	d.Start(2000, time.Second, nil)
	loop.Pump(clock.Advance(500 * time.Millisecond))

	assert.InDelta(t, 2000*(1-0.125), view.offset, 1e-9)
}
