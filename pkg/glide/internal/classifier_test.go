package internal

import (
	"testing"

	"github.com/BrandonKowalski/glide/pkg/glide/constants"
	"github.com/stretchr/testify/assert"
)

func TestClassifyWheel_Boundary(t *testing.T) {
	tests := []struct {
		name      string
		deltaY    float64
		mode      constants.WheelMode
		precision bool
	}{
		{"small pixel delta", 49, constants.WheelModePixel, true},
		{"small negative pixel delta", -49, constants.WheelModePixel, true},
		{"at threshold", 50, constants.WheelModePixel, false},
		{"large pixel delta", 51, constants.WheelModePixel, false},
		{"small line delta", 49, constants.WheelModeLine, false},
		{"small page delta", 1, constants.WheelModePage, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := ClassifyWheel(tt.deltaY, tt.mode, constants.DefaultPrecisionThreshold)
			assert.Equal(t, tt.precision, class.IsPrecision)
		})
	}
}

func TestWheelGain_TwoTiers(t *testing.T) {
	gain := WheelGain{Precision: 0.95, Discrete: 0.85}

	assert.Equal(t, 0.95, gain.For(DeviceClass{IsPrecision: true}))
	assert.Equal(t, 0.85, gain.For(DeviceClass{IsPrecision: false}))
	assert.Equal(t, "precision", DeviceClass{IsPrecision: true}.String())
	assert.Equal(t, "wheel", DeviceClass{}.String())
}
