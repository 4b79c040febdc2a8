// Package internal contains the animation core of glide: position clamping,
// wheel device classification, touch velocity tracking, the easing and tween
// drivers, and the frame loop that schedules them.
// Types and functions in this package are not part of the public API.
package internal
