// Package watch derives UI state from the scroll offset, such as whether the
// navbar should render as scrolled or whether a scroll-to-top button shows.
package watch

import (
	"github.com/BrandonKowalski/glide/pkg/glide"
	"github.com/BrandonKowalski/glide/pkg/glide/constants"
)

// OffsetFunc reads the live scroll offset.
type OffsetFunc func() float64

// Threshold tracks whether the offset is past a fixed line and reports each
// crossing. It re-evaluates on every EventScroll from its source.
type Threshold struct {
	offset   OffsetFunc
	limit    float64
	above    bool
	onChange func(above bool)
	remove   func()
}

// NewThreshold subscribes to scroll notifications on source. The initial
// state is evaluated immediately and reported through onChange only when the
// offset already starts past limit.
func NewThreshold(source glide.EventSource, offset OffsetFunc, limit float64, onChange func(above bool)) *Threshold {
	t := &Threshold{
		offset:   offset,
		limit:    limit,
		onChange: onChange,
	}
	t.remove = source.AddListener(glide.EventScroll, func(glide.Event) glide.Disposition {
		t.Evaluate()
		return glide.PassThrough
	})
	t.Evaluate()
	return t
}

// NavbarScrolled watches the line past which the navbar switches to its
// compact style.
func NavbarScrolled(source glide.EventSource, offset OffsetFunc, onChange func(bool)) *Threshold {
	return NewThreshold(source, offset, constants.NavbarScrolledThreshold, onChange)
}

// ScrollToTopVisible watches the line past which the scroll-to-top control
// is shown.
func ScrollToTopVisible(source glide.EventSource, offset OffsetFunc, onChange func(bool)) *Threshold {
	return NewThreshold(source, offset, constants.ScrollToTopThreshold, onChange)
}

// Evaluate reads the offset and fires onChange if the state flipped.
func (t *Threshold) Evaluate() {
	above := t.offset() > t.limit
	if above == t.above {
		return
	}
	t.above = above
	if t.onChange != nil {
		t.onChange(above)
	}
}

func (t *Threshold) Above() bool {
	return t.above
}

func (t *Threshold) Limit() float64 {
	return t.limit
}

// Close stops listening. Safe to call more than once.
func (t *Threshold) Close() {
	if t.remove != nil {
		t.remove()
		t.remove = nil
	}
}
