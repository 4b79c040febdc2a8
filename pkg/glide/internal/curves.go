package internal

import (
	"math"
	"sort"
)

// Curve maps an elapsed fraction in [0, 1] to a position fraction in [0, 1].
type Curve func(t float64) float64

// PowerOut returns an ease-out curve 1-(1-t)^n. Larger n decelerates harder.
func PowerOut(n float64) Curve {
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, n)
	}
}

func SineOut(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

func ExpoOut(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// DefaultCurve is used when no curve is given: power2.out.
var DefaultCurve = PowerOut(3)

// Names follow the GSAP convention where powerN.out is 1-(1-t)^(N+1).
var curves = map[string]Curve{
	"power1.out": PowerOut(2),
	"power2.out": PowerOut(3),
	"power3.out": PowerOut(4),
	"power4.out": PowerOut(5),
	"sine.out":   SineOut,
	"expo.out":   ExpoOut,
}

// CurveByName looks up a named ease-out curve. Only decelerating curves are
// registered.
func CurveByName(name string) (Curve, bool) {
	c, ok := curves[name]
	return c, ok
}

// CurveNames lists the registered curve names in sorted order.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
