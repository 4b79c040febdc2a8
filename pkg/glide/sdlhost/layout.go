package sdlhost

import (
	"math"

	"github.com/BrandonKowalski/glide/pkg/glide/anchor"
)

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

const (
	navbarHeight   = int32(64)
	titleSpacing   = int32(15)
	dividerSpacing = int32(15)
	sectionSpacing = int32(30)
	footerHeight   = int32(30)
)

// Metrics measures rendered text. The SDL host backs it with ttf fonts.
type Metrics interface {
	TitleHeight() int32
	LineHeight() int32
	Wrap(text string, maxWidth int32) []string
	TextWidth(text string) int32
}

// Block is one laid-out section in content coordinates.
type Block struct {
	Section Section
	Top     int32
	Height  int32
	BodyY   int32
	Lines   []string
}

// Layout positions every section of a page for a given window size.
type Layout struct {
	Blocks        []Block
	ContentHeight int32
	ContentWidth  int32
	Margins       Padding
	index         map[string]int
}

// ComputeLayout stacks the sections below the navbar. Each section is at
// least MinScreens viewports tall.
func ComputeLayout(page Page, width, viewportHeight int32, margins Padding, m Metrics) *Layout {
	l := &Layout{
		Margins:      margins,
		ContentWidth: width - margins.Left - margins.Right,
		index:        make(map[string]int, len(page.Sections)),
	}

	y := navbarHeight + margins.Top
	for i, section := range page.Sections {
		if i > 0 {
			y += sectionSpacing
		}

		top := y
		h := int32(0)
		if section.Title != "" {
			h += m.TitleHeight() + titleSpacing
		}
		h += dividerSpacing
		bodyY := top + h
		lines := m.Wrap(section.Body, l.ContentWidth)
		h += int32(len(lines)) * m.LineHeight()

		if minH := int32(math.Ceil(section.MinScreens * float64(viewportHeight))); h < minH {
			h = minH
		}

		if section.ID != "" {
			l.index[section.ID] = len(l.Blocks)
		}
		l.Blocks = append(l.Blocks, Block{Section: section, Top: top, Height: h, BodyY: bodyY, Lines: lines})
		y = top + h
	}

	l.ContentHeight = y + margins.Bottom + footerHeight
	return l
}

// Offset returns the top of the section with the given id.
func (l *Layout) Offset(id string) (float64, bool) {
	i, ok := l.index[id]
	if !ok {
		return 0, false
	}
	return float64(l.Blocks[i].Top), true
}

// Visible returns the blocks that intersect [offset, offset+viewport).
func (l *Layout) Visible(offset, viewport float64) []Block {
	var out []Block
	for _, b := range l.Blocks {
		top := float64(b.Top)
		if top+float64(b.Height) <= offset || top >= offset+viewport {
			continue
		}
		out = append(out, b)
	}
	return out
}

// RegisterAnchors adds every section of the page to registry. The offsets
// are read through current so a relayout is picked up without
// re-registering.
func RegisterAnchors(registry *anchor.Registry, page Page, current func() *Layout) {
	for _, section := range page.Sections {
		if section.ID == "" {
			continue
		}
		id := section.ID
		registry.Register(id, func() (float64, bool) {
			l := current()
			if l == nil {
				return 0, false
			}
			return l.Offset(id)
		})
	}
}
