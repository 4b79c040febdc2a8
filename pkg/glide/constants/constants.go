// Package constants defines shared constants, types, and tuning defaults
// used throughout the glide scroll controller.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables recognised by glide and its hosts.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	LogLevelEnvVar     = "GLIDE_LOG_LEVEL"
	ConfigPathEnvVar   = "GLIDE_CONFIG"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// WheelMode is the granularity a wheel delta was reported in.
type WheelMode int

const (
	WheelModePixel WheelMode = iota // Pixel-granular deltas (trackpads, hi-res wheels)
	WheelModeLine                   // One unit per detent (classic mouse wheels)
	WheelModePage                   // One unit per page
)

func (m WheelMode) String() string {
	switch m {
	case WheelModePixel:
		return "pixel"
	case WheelModeLine:
		return "line"
	case WheelModePage:
		return "page"
	default:
		return "unknown"
	}
}

// Key identifies the named keys the controller reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeySpace
)

func (k Key) GetName() string {
	switch k {
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeySpace:
		return "Space"
	default:
		return "Unknown"
	}
}

// Tuned defaults for the controller. These are feel, not contract.
const (
	DefaultEaseFactor         = 0.18 // Fraction of the remaining distance covered per frame
	DefaultEpsilon            = 0.05 // Drift termination threshold in pixels
	DefaultPrecisionSpeed     = 0.95 // Gain for trackpad deltas
	DefaultWheelSpeed         = 0.85 // Gain for wheel detent deltas
	DefaultPrecisionThreshold = 50.0 // |deltaY| below which pixel-mode input counts as precision
	DefaultDragGain           = 1.3  // Finger travel amplification while dragging
	DefaultMomentumGain       = 250.0
	DefaultKeyStep            = 0.28 // Arrow/Space step as a fraction of the viewport
	DefaultPageStep           = 0.8  // PageUp/PageDown step as a fraction of the viewport
	DefaultNavbarOffset       = 80.0 // Anchor landing offset below the fixed navbar
	DefaultTweenDivisor       = 1200.0

	DefaultTweenMinDuration    = 400 * time.Millisecond
	DefaultTweenMaxDuration    = 1200 * time.Millisecond
	DefaultScrollToTopDuration = 1200 * time.Millisecond

	DefaultTweenCurve       = "power2.out"
	DefaultScrollToTopCurve = "power3.out"
)

// Wheel normalisation used by hosts that receive detent counts.
const (
	WheelLinePixels        = 100.0 // Pixels per wheel detent
	WheelHiResUnitsPerLine = 120.0 // Linux REL_WHEEL_HI_RES units per detent
)

// Thresholds used by the stock watchers.
const (
	NavbarScrolledThreshold = 10.0
	ScrollToTopThreshold    = 300.0
)
