package evdev

import (
	goevdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/glide/pkg/glide"
	"github.com/BrandonKowalski/glide/pkg/glide/constants"
)

var keyMap = map[goevdev.EvCode]constants.Key{
	goevdev.KEY_UP:       constants.KeyArrowUp,
	goevdev.KEY_DOWN:     constants.KeyArrowDown,
	goevdev.KEY_PAGEUP:   constants.KeyPageUp,
	goevdev.KEY_PAGEDOWN: constants.KeyPageDown,
	goevdev.KEY_HOME:     constants.KeyHome,
	goevdev.KEY_END:      constants.KeyEnd,
	goevdev.KEY_SPACE:    constants.KeySpace,
}

// AxisRange is the raw range a touch axis reports in.
type AxisRange struct {
	Min int32
	Max int32
}

// Translator turns raw kernel input events into glide events. Touch samples
// are buffered until the SYN_REPORT that closes their frame. Only the
// viewport height may change while another goroutine translates.
type Translator struct {
	axis     AxisRange
	viewport atomic.Float64

	hiRes    bool
	touching bool
	started  bool
	haveY    bool
	dirty    bool
	y        float64
}

// NewTranslator scales touch positions from axis into a viewport of the
// given height in pixels.
func NewTranslator(axis AxisRange, viewportHeight float64) *Translator {
	t := &Translator{axis: axis}
	t.viewport.Store(viewportHeight)
	return t
}

// SetViewportHeight updates the touch scaling after a resize.
func (t *Translator) SetViewportHeight(h float64) {
	t.viewport.Store(h)
}

// Translate consumes one raw event and returns the glide events it
// completes, if any.
func (t *Translator) Translate(ev *goevdev.InputEvent) []glide.Event {
	switch ev.Type {
	case goevdev.EV_REL:
		return t.wheel(ev)
	case goevdev.EV_ABS:
		if ev.Code == goevdev.ABS_MT_POSITION_Y || ev.Code == goevdev.ABS_Y {
			t.y = t.scale(ev.Value)
			t.haveY = true
			t.dirty = true
		}
	case goevdev.EV_KEY:
		return t.key(ev)
	case goevdev.EV_SYN:
		if ev.Code == goevdev.SYN_REPORT {
			return t.flush()
		}
	}
	return nil
}

// Kernels that support high-resolution scrolling report every detent twice,
// once per code. The first REL_WHEEL_HI_RES seen switches REL_WHEEL off.
func (t *Translator) wheel(ev *goevdev.InputEvent) []glide.Event {
	switch ev.Code {
	case goevdev.REL_WHEEL_HI_RES:
		t.hiRes = true
		units := float64(ev.Value) / constants.WheelHiResUnitsPerLine
		return []glide.Event{{
			Kind:      glide.EventWheel,
			DeltaY:    -units * constants.WheelLinePixels,
			DeltaMode: constants.WheelModePixel,
		}}
	case goevdev.REL_WHEEL:
		if t.hiRes {
			return nil
		}
		return []glide.Event{{
			Kind:      glide.EventWheel,
			DeltaY:    -float64(ev.Value) * constants.WheelLinePixels,
			DeltaMode: constants.WheelModeLine,
		}}
	}
	return nil
}

func (t *Translator) key(ev *goevdev.InputEvent) []glide.Event {
	if ev.Code == goevdev.BTN_TOUCH {
		switch ev.Value {
		case 1:
			t.touching = true
			t.started = false
			// A finger landing where the last one lifted gets no fresh ABS_Y.
			t.dirty = t.haveY
		case 0:
			wasStarted := t.started
			t.touching = false
			t.started = false
			t.dirty = false
			if wasStarted {
				return []glide.Event{{Kind: glide.EventTouchEnd}}
			}
		}
		return nil
	}

	// 1 is press, 2 is autorepeat
	if ev.Value == 0 {
		return nil
	}
	if key, ok := keyMap[ev.Code]; ok {
		return []glide.Event{{Kind: glide.EventKeyDown, Key: key}}
	}
	return nil
}

func (t *Translator) flush() []glide.Event {
	if !t.touching || !t.haveY || !t.dirty {
		return nil
	}
	t.dirty = false

	if !t.started {
		t.started = true
		return []glide.Event{{Kind: glide.EventTouchStart, TouchY: t.y}}
	}
	return []glide.Event{{Kind: glide.EventTouchMove, TouchY: t.y}}
}

func (t *Translator) scale(v int32) float64 {
	span := float64(t.axis.Max - t.axis.Min)
	if span <= 0 {
		return float64(v)
	}
	return float64(v-t.axis.Min) / span * t.viewport.Load()
}
