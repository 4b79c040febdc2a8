package sdlhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/glide/pkg/glide"
	"github.com/BrandonKowalski/glide/pkg/glide/constants"
)

func newTestRouter() *inputRouter {
	return &inputRouter{
		viewport: func() int32 { return 800 },
		hit: func(x, y int32) (string, bool) {
			switch {
			case y < 64:
				return "#about", false
			case y > 700:
				return "", true
			}
			return "", false
		},
	}
}

func TestRoute_Wheel(t *testing.T) {
	r := newTestRouter()

	out := r.route(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: -2})
	require.Len(t, out.events, 1)
	assert.Equal(t, glide.EventWheel, out.events[0].Kind)
	assert.Equal(t, 200.0, out.events[0].DeltaY)
	assert.Equal(t, constants.WheelModeLine, out.events[0].DeltaMode)

	out = r.route(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: -1, Direction: sdl.MOUSEWHEEL_FLIPPED})
	require.Len(t, out.events, 1)
	assert.Equal(t, -100.0, out.events[0].DeltaY)

	assert.Empty(t, r.route(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 3}).events)
}

func TestRoute_Touch(t *testing.T) {
	r := newTestRouter()

	start := r.route(&sdl.TouchFingerEvent{Type: sdl.FINGERDOWN, Y: 0.5})
	move := r.route(&sdl.TouchFingerEvent{Type: sdl.FINGERMOTION, Y: 0.25})
	end := r.route(&sdl.TouchFingerEvent{Type: sdl.FINGERUP, Y: 0.25})

	require.Len(t, start.events, 1)
	assert.Equal(t, glide.EventTouchStart, start.events[0].Kind)
	assert.Equal(t, 400.0, start.events[0].TouchY)
	assert.Equal(t, 200.0, move.events[0].TouchY)
	assert.Equal(t, glide.EventTouchEnd, end.events[0].Kind)
}

func TestRoute_Keys(t *testing.T) {
	r := newTestRouter()
	keyDown := func(sym sdl.Keycode) routed {
		return r.route(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sym}})
	}

	out := keyDown(sdl.K_END)
	require.Len(t, out.events, 1)
	assert.Equal(t, constants.KeyEnd, out.events[0].Key)

	out = keyDown(sdl.K_a)
	require.Len(t, out.events, 1)
	assert.Equal(t, constants.KeyUnknown, out.events[0].Key)

	assert.Equal(t, actionQuit, keyDown(sdl.K_ESCAPE).action)
	assert.Equal(t, actionBack, keyDown(sdl.K_BACKSPACE).action)
	assert.Empty(t, r.route(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_END}}).events)
}

func TestRoute_Clicks(t *testing.T) {
	r := newTestRouter()
	click := func(x0, y0, x1, y1 int32) routed {
		r.route(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: x0, Y: y0})
		return r.route(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: x1, Y: y1})
	}

	out := click(10, 10, 12, 12)
	require.Len(t, out.events, 1)
	assert.Equal(t, glide.EventActivate, out.events[0].Kind)
	assert.Equal(t, "#about", out.events[0].Href)

	assert.Empty(t, click(10, 10, 10, 300).events)
	assert.Equal(t, actionScrollToTop, click(5, 750, 5, 750).action)

	out = click(10, 300, 10, 300)
	require.Len(t, out.events, 1)
	assert.Equal(t, "", out.events[0].Href)

	assert.Empty(t, r.route(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT}).events)
}

func TestRoute_Window(t *testing.T) {
	r := newTestRouter()

	assert.Equal(t, actionQuit, r.route(&sdl.QuitEvent{Type: sdl.QUIT}).action)
	assert.Equal(t, actionResize, r.route(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED}).action)
	assert.Equal(t, actionNone, r.route(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED}).action)
}
