package internal

import (
	"math"

	"github.com/BrandonKowalski/glide/pkg/glide/constants"
)

// DeviceClass is the outcome of classifying a wheel event.
type DeviceClass struct {
	IsPrecision bool
}

func (c DeviceClass) String() string {
	if c.IsPrecision {
		return "precision"
	}
	return "wheel"
}

// ClassifyWheel labels a wheel delta as precision (trackpad) input when it
// is pixel-granular and smaller than threshold. Line and page deltas are
// always discrete, whatever their magnitude.
func ClassifyWheel(deltaY float64, mode constants.WheelMode, threshold float64) DeviceClass {
	return DeviceClass{
		IsPrecision: mode == constants.WheelModePixel && math.Abs(deltaY) < threshold,
	}
}

// WheelGain holds the two-tier speed multipliers.
type WheelGain struct {
	Precision float64
	Discrete  float64
}

func (g WheelGain) For(class DeviceClass) float64 {
	if class.IsPrecision {
		return g.Precision
	}
	return g.Discrete
}
