package evdev

import (
	"testing"

	goevdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/glide/pkg/glide"
	"github.com/BrandonKowalski/glide/pkg/glide/constants"
)

func translateAll(tr *Translator, events ...*goevdev.InputEvent) []glide.Event {
	var out []glide.Event
	for _, ev := range events {
		out = append(out, tr.Translate(ev)...)
	}
	return out
}

func TestTranslator_Wheel(t *testing.T) {
	tr := NewTranslator(AxisRange{}, 800)

	out := translateAll(tr, rel(goevdev.REL_WHEEL, -1), syn())
	require.Len(t, out, 1)
	assert.Equal(t, glide.EventWheel, out[0].Kind)
	assert.Equal(t, 100.0, out[0].DeltaY)
	assert.Equal(t, constants.WheelModeLine, out[0].DeltaMode)

	out = translateAll(tr, rel(goevdev.REL_WHEEL, 2))
	require.Len(t, out, 1)
	assert.Equal(t, -200.0, out[0].DeltaY)
}

func TestTranslator_HiResWheelSupersedesDetents(t *testing.T) {
	tr := NewTranslator(AxisRange{}, 800)

	out := translateAll(tr,
		rel(goevdev.REL_WHEEL_HI_RES, -30),
		syn(),
		rel(goevdev.REL_WHEEL_HI_RES, -90),
		rel(goevdev.REL_WHEEL, -1),
		syn(),
	)

	require.Len(t, out, 2)
	assert.Equal(t, constants.WheelModePixel, out[0].DeltaMode)
	assert.InDelta(t, 25, out[0].DeltaY, 1e-9)
	assert.InDelta(t, 75, out[1].DeltaY, 1e-9)
}

func TestTranslator_TouchGesture(t *testing.T) {
	tr := NewTranslator(AxisRange{Min: 0, Max: 1000}, 500)

	out := translateAll(tr,
		key(goevdev.BTN_TOUCH, 1),
		abs(goevdev.ABS_MT_POSITION_Y, 800),
		syn(),
		abs(goevdev.ABS_MT_POSITION_Y, 600),
		syn(),
		syn(),
		abs(goevdev.ABS_MT_POSITION_Y, 400),
		syn(),
		key(goevdev.BTN_TOUCH, 0),
		syn(),
	)

	kinds := make([]glide.EventKind, 0, len(out))
	for _, ev := range out {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []glide.EventKind{
		glide.EventTouchStart,
		glide.EventTouchMove,
		glide.EventTouchMove,
		glide.EventTouchEnd,
	}, kinds)
	assert.Equal(t, 400.0, out[0].TouchY)
	assert.Equal(t, 300.0, out[1].TouchY)
	assert.Equal(t, 200.0, out[2].TouchY)
}

func TestTranslator_TouchAtSameSpotStartsOnPress(t *testing.T) {
	tr := NewTranslator(AxisRange{Min: 0, Max: 1000}, 500)

	translateAll(tr,
		key(goevdev.BTN_TOUCH, 1),
		abs(goevdev.ABS_MT_POSITION_Y, 600),
		syn(),
		key(goevdev.BTN_TOUCH, 0),
		syn(),
	)

	out := translateAll(tr,
		key(goevdev.BTN_TOUCH, 1),
		syn(),
	)
	require.Len(t, out, 1)
	assert.Equal(t, glide.EventTouchStart, out[0].Kind)
	assert.Equal(t, 300.0, out[0].TouchY)

	out = translateAll(tr,
		abs(goevdev.ABS_MT_POSITION_Y, 400),
		syn(),
	)
	require.Len(t, out, 1)
	assert.Equal(t, glide.EventTouchMove, out[0].Kind)
}

func TestTranslator_TapWithoutPositionEmitsNothing(t *testing.T) {
	tr := NewTranslator(AxisRange{Min: 0, Max: 1000}, 500)

	out := translateAll(tr, key(goevdev.BTN_TOUCH, 1), syn(), key(goevdev.BTN_TOUCH, 0), syn())
	assert.Empty(t, out)
}

func TestTranslator_Keys(t *testing.T) {
	tr := NewTranslator(AxisRange{}, 800)

	tests := []struct {
		code     goevdev.EvCode
		value    int32
		expected constants.Key
		emitted  bool
	}{
		{goevdev.KEY_END, 1, constants.KeyEnd, true},
		{goevdev.KEY_END, 0, constants.KeyUnknown, false},
		{goevdev.KEY_DOWN, 2, constants.KeyArrowDown, true},
		{goevdev.KEY_SPACE, 1, constants.KeySpace, true},
		{goevdev.KEY_A, 1, constants.KeyUnknown, false},
	}

	for _, tt := range tests {
		out := tr.Translate(key(tt.code, tt.value))
		if !tt.emitted {
			assert.Empty(t, out)
			continue
		}
		require.Len(t, out, 1)
		assert.Equal(t, glide.EventKeyDown, out[0].Kind)
		assert.Equal(t, tt.expected, out[0].Key)
	}
}

func TestTranslator_ViewportResize(t *testing.T) {
	tr := NewTranslator(AxisRange{Min: 100, Max: 1100}, 500)
	tr.SetViewportHeight(1000)

	out := translateAll(tr, key(goevdev.BTN_TOUCH, 1), abs(goevdev.ABS_Y, 600), syn())
	require.Len(t, out, 1)
	assert.Equal(t, 500.0, out[0].TouchY)
}
