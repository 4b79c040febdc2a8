package sdlhost

import (
	"math"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func (h *Host) render() {
	renderer := h.window.Renderer
	width, height := h.window.GetWidth(), h.window.GetHeight()
	offset := int32(math.Round(h.surface.ScrollOffset()))

	setDrawColor(renderer, h.theme.BackgroundColor)
	renderer.Clear()
	h.window.RenderBackground()

	for _, block := range h.layout.Visible(float64(offset), float64(height)) {
		h.renderBlock(block, offset, height)
	}

	h.renderScrollbar(width, height, offset)
	h.renderNavbar(width, offset)
	h.renderScrollToTop()
	h.renderFooter(width, height)
}

func (h *Host) renderBlock(block Block, offset, viewportHeight int32) {
	renderer := h.window.Renderer
	margins := h.layout.Margins
	y := block.Top - offset

	if block.Section.Title != "" {
		texture := h.text("title:"+block.Section.ID+":"+block.Section.Title, block.Section.Title, h.fonts.TitleFont, h.theme.TitleColor)
		if rect, ok := textureRect(texture, margins.Left, y); ok && isRectVisible(rect, viewportHeight) {
			renderer.Copy(texture, nil, &rect)
		}
		y += h.metrics.TitleHeight() + titleSpacing
	}

	if isLineVisible(y, viewportHeight) {
		setDrawColor(renderer, h.theme.DividerColor)
		renderer.DrawLine(margins.Left, y, margins.Left+h.layout.ContentWidth, y)
	}

	lh := h.metrics.LineHeight()
	for i, line := range block.Lines {
		lineY := block.BodyY - offset + int32(i)*lh
		if lineY+lh < 0 || lineY > viewportHeight || strings.TrimSpace(line) == "" {
			continue
		}
		texture := h.text("body:"+line, line, h.fonts.BodyFont, h.theme.TextColor)
		if rect, ok := textureRect(texture, margins.Left, lineY); ok {
			renderer.Copy(texture, nil, &rect)
		}
	}
}

func (h *Host) renderNavbar(width, offset int32) {
	renderer := h.window.Renderer

	if h.navbarScrolled.Above() {
		setDrawColor(renderer, h.theme.NavbarColor)
		renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: width, H: navbarHeight})
	}

	if texture := h.text("page:"+h.page.Title, h.page.Title, h.fonts.BodyFont, h.theme.TitleColor); texture != nil {
		if rect, ok := textureRect(texture, h.layout.Margins.Left, 0); ok {
			rect.Y = (navbarHeight - rect.H) / 2
			renderer.Copy(texture, nil, &rect)
		}
	}

	active := h.activeSection(offset)
	for _, item := range h.nav {
		color := h.theme.HintColor
		if item.link.Href == "#"+active {
			color = h.theme.TitleColor
		}
		texture := h.text("nav:"+item.link.Label+colorKey(color), item.link.Label, h.fonts.SmallFont, color)
		rect, ok := textureRect(texture, 0, 0)
		if !ok {
			continue
		}
		rect.X = item.rect.X + (item.rect.W-rect.W)/2
		rect.Y = item.rect.Y + (item.rect.H-rect.H)/2
		renderer.Copy(texture, nil, &rect)
	}
}

// activeSection returns the id of the last section whose anchor landing
// point has been reached.
func (h *Host) activeSection(offset int32) string {
	landing := offset + int32(h.controller.Config().NavbarOffset) + 1
	active := ""
	for _, b := range h.layout.Blocks {
		if b.Top <= landing && b.Section.ID != "" {
			active = b.Section.ID
		}
	}
	return active
}

func (h *Host) renderScrollbar(width, height, offset int32) {
	maxScroll := h.layout.ContentHeight - height
	if maxScroll <= 0 {
		return
	}

	renderer := h.window.Renderer
	scrollbarWidth := int32(6)
	trackY := navbarHeight + 5
	trackHeight := height - navbarHeight - footerHeight - 10

	handleHeight := int32(float64(trackHeight) * float64(height) / float64(h.layout.ContentHeight))
	handleHeight = max(handleHeight, 20)
	handleHeight = min(handleHeight, trackHeight/3)

	var handleY int32
	switch {
	case offset >= maxScroll:
		handleY = trackHeight - handleHeight
	case offset <= 0:
		handleY = 0
	default:
		handleY = int32(float64(offset) * float64(trackHeight-handleHeight) / float64(maxScroll))
	}

	scrollbarX := width - scrollbarWidth - 5

	setDrawColor(renderer, sdl.Color{R: 50, G: 50, B: 50, A: 255})
	renderer.FillRect(&sdl.Rect{X: scrollbarX, Y: trackY, W: scrollbarWidth, H: trackHeight})

	setDrawColor(renderer, h.theme.AccentColor)
	renderer.FillRect(&sdl.Rect{X: scrollbarX, Y: trackY + handleY, W: scrollbarWidth, H: handleHeight})
}

func (h *Host) renderScrollToTop() {
	if h.icon == nil || !h.topVisible.Above() {
		return
	}
	h.window.Renderer.Copy(h.icon, nil, &h.topRect)
}

func (h *Host) renderFooter(width, height int32) {
	if h.footer == nil {
		return
	}
	renderer := h.window.Renderer
	y := height - footerHeight

	setDrawColor(renderer, h.theme.BackgroundColor)
	renderer.FillRect(&sdl.Rect{X: 0, Y: y, W: width, H: footerHeight})

	parts := h.footer.Hints()
	if n := h.controller.HistoryLen(); n > 0 {
		parts = append(parts, h.footer.HistoryDepth(n))
	}
	if id, ok := h.controller.LastJump(); ok {
		parts = append(parts, h.footer.LastJump(h.page.SectionTitle(id)))
	}
	line := strings.Join(parts, "    ")

	texture := h.text("footer:"+line, line, h.fonts.SmallFont, h.theme.HintColor)
	if rect, ok := textureRect(texture, h.layout.Margins.Left, y); ok {
		rect.Y = y + (footerHeight-rect.H)/2
		renderer.Copy(texture, nil, &rect)
	}
}

// text returns a cached texture for text rendered in font and color.
func (h *Host) text(key, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	return h.cache.GetOrCreate(key, func() *sdl.Texture {
		return renderText(h.window.Renderer, text, font, color)
	})
}

func textureRect(texture *sdl.Texture, x, y int32) (sdl.Rect, bool) {
	if texture == nil {
		return sdl.Rect{}, false
	}
	_, _, w, hgt, err := texture.Query()
	if err != nil {
		return sdl.Rect{}, false
	}
	return sdl.Rect{X: x, Y: y, W: w, H: hgt}, true
}

func setDrawColor(renderer *sdl.Renderer, c sdl.Color) {
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func colorKey(c sdl.Color) string {
	return string([]byte{':', c.R, c.G, c.B})
}

func isRectVisible(rect sdl.Rect, viewportHeight int32) bool {
	if rect.Y+rect.H < 0 || rect.Y > viewportHeight {
		return false
	}
	return true
}

func isLineVisible(y, viewportHeight int32) bool {
	if y < 0 || y > viewportHeight {
		return false
	}
	return true
}
