package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/glide/pkg/glide"
	"github.com/BrandonKowalski/glide/pkg/glide/constants"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionBack
	actionScrollToTop
	actionResize
)

// A press and release further apart than this is a drag, not a click.
const clickSlop = 8

var keyMap = map[sdl.Keycode]constants.Key{
	sdl.K_UP:       constants.KeyArrowUp,
	sdl.K_DOWN:     constants.KeyArrowDown,
	sdl.K_PAGEUP:   constants.KeyPageUp,
	sdl.K_PAGEDOWN: constants.KeyPageDown,
	sdl.K_HOME:     constants.KeyHome,
	sdl.K_END:      constants.KeyEnd,
	sdl.K_SPACE:    constants.KeySpace,
}

// hitTester maps a window point to what is under it: a link href, or the
// scroll-to-top control.
type hitTester func(x, y int32) (href string, scrollTop bool)

// inputRouter converts SDL events into glide events plus host actions.
type inputRouter struct {
	viewport func() int32
	hit      hitTester

	pressed bool
	pressX  int32
	pressY  int32
}

type routed struct {
	events []glide.Event
	action action
}

func (r *inputRouter) route(event sdl.Event) routed {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return routed{action: actionQuit}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_RESIZED {
			return routed{action: actionResize}
		}

	case *sdl.MouseWheelEvent:
		if e.Y == 0 {
			return routed{}
		}
		detents := float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			detents = -detents
		}
		return routed{events: []glide.Event{{
			Kind:      glide.EventWheel,
			DeltaY:    -detents * constants.WheelLinePixels,
			DeltaMode: constants.WheelModeLine,
		}}}

	case *sdl.TouchFingerEvent:
		y := float64(e.Y) * float64(r.viewport())
		switch e.Type {
		case sdl.FINGERDOWN:
			return routed{events: []glide.Event{{Kind: glide.EventTouchStart, TouchY: y}}}
		case sdl.FINGERMOTION:
			return routed{events: []glide.Event{{Kind: glide.EventTouchMove, TouchY: y}}}
		case sdl.FINGERUP:
			return routed{events: []glide.Event{{Kind: glide.EventTouchEnd}}}
		}

	case *sdl.MouseButtonEvent:
		return r.click(e)

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return routed{}
		}
		switch e.Keysym.Sym {
		case sdl.K_ESCAPE, sdl.K_q:
			return routed{action: actionQuit}
		case sdl.K_BACKSPACE:
			return routed{action: actionBack}
		}
		if key, ok := keyMap[e.Keysym.Sym]; ok {
			return routed{events: []glide.Event{{Kind: glide.EventKeyDown, Key: key}}}
		}
		return routed{events: []glide.Event{{Kind: glide.EventKeyDown, Key: constants.KeyUnknown}}}
	}

	return routed{}
}

func (r *inputRouter) click(e *sdl.MouseButtonEvent) routed {
	if e.Button != sdl.BUTTON_LEFT {
		return routed{}
	}

	if e.Type == sdl.MOUSEBUTTONDOWN {
		r.pressed = true
		r.pressX, r.pressY = e.X, e.Y
		return routed{}
	}

	if e.Type != sdl.MOUSEBUTTONUP || !r.pressed {
		return routed{}
	}
	r.pressed = false
	if abs32(e.X-r.pressX) > clickSlop || abs32(e.Y-r.pressY) > clickSlop {
		return routed{}
	}

	href, top := r.hit(e.X, e.Y)
	if top {
		return routed{action: actionScrollToTop}
	}
	return routed{events: []glide.Event{{Kind: glide.EventActivate, Href: href}}}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
