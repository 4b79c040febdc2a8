package internal

import "math"

// MaxScroll is the furthest offset the surface can scroll to. Content shorter
// than the viewport yields 0.
func MaxScroll(contentHeight, viewportHeight float64) float64 {
	return math.Max(0, contentHeight-viewportHeight)
}

// Clamp bounds value to [0, maxScroll]. A non-positive maxScroll pins
// everything to 0.
func Clamp(value, maxScroll float64) float64 {
	if maxScroll <= 0 {
		return 0
	}
	return math.Max(0, math.Min(value, maxScroll))
}
