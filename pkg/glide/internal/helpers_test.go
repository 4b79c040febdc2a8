package internal

import "time"

type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

type stubViewport struct {
	offset   float64
	content  float64
	viewport float64
	writes   int
}

func (v *stubViewport) ScrollOffset() float64 { return v.offset }

func (v *stubViewport) SetScrollOffset(y float64) {
	v.offset = y
	v.writes++
}

func (v *stubViewport) MaxScroll() float64 { return MaxScroll(v.content, v.viewport) }

func linear(t float64) float64 { return t }
