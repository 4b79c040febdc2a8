package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/glide/pkg/glide"
)

func TestThreshold_Crossings(t *testing.T) {
	events := glide.NewDispatcher()
	offset := 0.0
	var changes []bool

	th := NavbarScrolled(events, func() float64 { return offset }, func(above bool) {
		changes = append(changes, above)
	})
	assert.False(t, th.Above())
	assert.Empty(t, changes)

	for _, y := range []float64{5, 10, 11, 400, 3, 0} {
		offset = y
		events.Dispatch(glide.Event{Kind: glide.EventScroll})
	}

	assert.Equal(t, []bool{true, false}, changes)
	assert.False(t, th.Above())
}

func TestThreshold_InitialState(t *testing.T) {
	events := glide.NewDispatcher()
	var changes []bool

	th := ScrollToTopVisible(events, func() float64 { return 301 }, func(above bool) {
		changes = append(changes, above)
	})

	assert.True(t, th.Above())
	assert.Equal(t, []bool{true}, changes)
	assert.Equal(t, 300.0, th.Limit())
}

func TestThreshold_Close(t *testing.T) {
	events := glide.NewDispatcher()
	offset := 0.0
	calls := 0

	th := NewThreshold(events, func() float64 { return offset }, 50, func(bool) { calls++ })
	th.Close()
	th.Close()

	offset = 100
	events.Dispatch(glide.Event{Kind: glide.EventScroll})
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, events.ListenerCount())
}

func TestThreshold_FollowsController(t *testing.T) {
	events := glide.NewDispatcher()
	surface := &page{content: 3000, viewport: 600, events: events}

	ctrl, err := glide.NewController(surface, events, glide.ControllerOptions{})
	assert.NoError(t, err)
	ctrl.Attach()
	defer ctrl.Detach()

	visible := ScrollToTopVisible(events, surface.ScrollOffset, nil)
	assert.NoError(t, ctrl.ScrollTo(1000))
	for i := 0; i < 200 && ctrl.Authority() != glide.AuthorityIdle; i++ {
		ctrl.Frames().Pump(nowAfter(i))
	}
	assert.True(t, visible.Above())
}
