package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameLoop_RunsOncePerPump(t *testing.T) {
	loop := NewFrameLoop()
	clock := newManualClock()

	calls := 0
	var tick FrameFunc
	tick = func(time.Time) {
		calls++
		loop.RequestFrame(tick)
	}
	loop.RequestFrame(tick)

	for i := 0; i < 5; i++ {
		assert.Equal(t, 1, loop.Pump(clock.Advance(16*time.Millisecond)))
	}
	assert.Equal(t, 5, calls)
	assert.Equal(t, 1, loop.Pending())
}

func TestFrameLoop_CancelIsIdempotent(t *testing.T) {
	loop := NewFrameLoop()

	ran := false
	h := loop.RequestFrame(func(time.Time) { ran = true })
	loop.CancelFrame(h)
	loop.CancelFrame(h)
	loop.CancelFrame(0)

	assert.Equal(t, 0, loop.Pump(time.Now()))
	assert.False(t, ran)
	assert.Equal(t, 0, loop.Pending())
}

func TestFrameLoop_HandlesAreUnique(t *testing.T) {
	loop := NewFrameLoop()
	a := loop.RequestFrame(func(time.Time) {})
	b := loop.RequestFrame(func(time.Time) {})

	assert.NotEqual(t, FrameHandle(0), a)
	assert.NotEqual(t, a, b)
}
