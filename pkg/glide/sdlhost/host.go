// Package sdlhost runs a glide.Controller against a scrollable page drawn
// with SDL2.
//
// The host owns the event loop. Each iteration it drains SDL events and any
// extra feeds into a glide.Dispatcher, pumps the controller's frame loop,
// draws the visible part of the page and presents it.
package sdlhost

import (
	"context"
	"errors"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/glide/pkg/glide"
	"github.com/BrandonKowalski/glide/pkg/glide/anchor"
	"github.com/BrandonKowalski/glide/pkg/glide/internal"
	"github.com/BrandonKowalski/glide/pkg/glide/watch"
)

// EventFeed is an extra input source drained once per frame, such as an
// evdev.Source.
type EventFeed interface {
	Drain(d *glide.Dispatcher) bool
}

// Feeds that scale positions to the window implement this to follow
// resizes.
type viewportAware interface {
	SetViewportHeight(h float64)
}

type Options struct {
	Title    string
	Page     Page          // Zero value uses DefaultPage()
	Config   glide.Config  // Zero value uses glide.DefaultConfig()
	Theme    Theme         // Zero value uses DefaultTheme()
	Window   WindowOptions // Zero value opens a resizable window
	Language string        // UI language tag; empty reads LANG
	Feeds    []EventFeed
}

type navItem struct {
	link NavLink
	rect sdl.Rect
}

// Host is a running SDL page with a scroll controller attached.
type Host struct {
	window  *Window
	fonts   *fontsType
	metrics ttfMetrics
	theme   Theme
	page    Page
	layout  *Layout
	nav     []navItem
	topRect sdl.Rect

	events     *glide.Dispatcher
	surface    *pageSurface
	anchors    *anchor.Registry
	frames     *glide.FrameLoop
	clock      ticksClock
	controller *glide.Controller
	router     *inputRouter
	feeds      []EventFeed

	navbarScrolled *watch.Threshold
	topVisible     *watch.Threshold

	footer *footerText
	cache  *TextureCache
	icon   *sdl.Texture
}

// New initialises SDL, opens the window and attaches a controller to the
// page.
func New(opts Options) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, glide.NewInfrastructureError("sdl_init", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, glide.NewInfrastructureError("ttf_init", err)
	}
	img.Init(img.INIT_PNG | img.INIT_JPG)

	h := &Host{
		theme:  opts.Theme,
		page:   opts.Page,
		events: glide.NewDispatcher(),
		frames: glide.NewFrameLoop(),
		clock:  newTicksClock(),
		feeds:  opts.Feeds,
		cache:  NewTextureCache(),
	}
	if h.theme == (Theme{}) {
		h.theme = DefaultTheme()
	}
	if len(h.page.Sections) == 0 {
		h.page = DefaultPage()
	}

	title := opts.Title
	if title == "" {
		title = h.page.Title
	}

	winOpts := opts.Window
	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	var err error
	if h.window, err = newWindow(title, winOpts, h.theme.BackgroundImagePath); err != nil {
		h.Close()
		return nil, err
	}
	if h.fonts, err = loadFonts(h.theme.FontPath, DefaultFontSizes); err != nil {
		h.Close()
		return nil, err
	}
	h.metrics = ttfMetrics{fonts: h.fonts}
	h.relayout()

	h.surface = &pageSurface{
		layout:   func() *Layout { return h.layout },
		viewport: h.window.GetHeight,
		events:   h.events,
	}
	h.anchors = anchor.NewRegistry()
	RegisterAnchors(h.anchors, h.page, func() *Layout { return h.layout })

	h.controller, err = glide.NewController(h.surface, h.events, glide.ControllerOptions{
		Config:  opts.Config,
		Frames:  h.frames,
		Clock:   h.clock,
		Anchors: h.anchors,
	})
	if err != nil {
		h.Close()
		return nil, err
	}

	h.router = &inputRouter{viewport: h.window.GetHeight, hit: h.hitTest}

	if h.footer, err = newFooterText(opts.Language); err != nil {
		internal.GetInternalLogger().Warn("Footer translations unavailable", "error", err)
	}
	if h.icon, err = iconTexture(h.window.Renderer, arrowUpSVG, 48); err != nil {
		internal.GetInternalLogger().Warn("Scroll-to-top icon unavailable", "error", err)
	}

	h.navbarScrolled = watch.NavbarScrolled(h.events, h.surface.ScrollOffset, func(scrolled bool) {
		internal.GetInternalLogger().Debug("Navbar style changed", "scrolled", scrolled)
	})
	h.topVisible = watch.ScrollToTopVisible(h.events, h.surface.ScrollOffset, nil)

	h.controller.Attach()
	return h, nil
}

// Controller returns the attached scroll controller.
func (h *Host) Controller() *glide.Controller {
	return h.controller
}

// AddFeed registers another input source drained every frame.
func (h *Host) AddFeed(feed EventFeed) {
	h.feeds = append(h.feeds, feed)
}

// ViewportHeight returns the current window height in pixels.
func (h *Host) ViewportHeight() int32 {
	return h.window.GetHeight()
}

// Anchors returns the registry of section offsets.
func (h *Host) Anchors() *anchor.Registry {
	return h.anchors
}

// Run drives the event loop until the window is closed or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if h.handle(event) {
				return nil
			}
		}

		for _, feed := range h.feeds {
			feed.Drain(h.events)
		}

		h.frames.Pump(h.clock.Now())
		h.render()
		h.window.Present()
	}
}

// handle routes one SDL event and reports whether the host should quit.
func (h *Host) handle(event sdl.Event) bool {
	r := h.router.route(event)
	for _, ev := range r.events {
		h.events.Dispatch(ev)
	}

	logger := internal.GetInternalLogger()
	switch r.action {
	case actionQuit:
		return true
	case actionBack:
		if err := h.controller.Back(); err != nil && !errors.Is(err, glide.ErrHistoryEmpty) {
			logger.Error("Back navigation failed", "error", err)
		}
	case actionScrollToTop:
		if err := h.controller.ScrollToTop(); err != nil {
			logger.Error("Scroll to top failed", "error", err)
		}
	case actionResize:
		h.relayout()
		for _, feed := range h.feeds {
			if va, ok := feed.(viewportAware); ok {
				va.SetViewportHeight(float64(h.window.GetHeight()))
			}
		}
		h.surface.reclamp()
		h.events.Dispatch(glide.Event{Kind: glide.EventScroll})
	}
	return false
}

// relayout recomputes section positions and hit areas for the current
// window size.
func (h *Host) relayout() {
	width, height := h.window.GetWidth(), h.window.GetHeight()
	h.layout = ComputeLayout(h.page, width, height, UniformPadding(24), h.metrics)
	h.nav = layoutNav(h.page.Nav, width, h.metrics)
	h.topRect = sdl.Rect{X: width - 48 - 24, Y: height - footerHeight - 48 - 24, W: 48, H: 48}
	h.cache.Destroy()
}

// layoutNav right-aligns the navbar links.
func layoutNav(links []NavLink, windowWidth int32, m Metrics) []navItem {
	const (
		gap     = int32(24)
		padding = int32(8)
		margin  = int32(24)
	)

	items := make([]navItem, len(links))
	x := windowWidth - margin
	for i := len(links) - 1; i >= 0; i-- {
		w := m.TextWidth(links[i].Label) + 2*padding
		x -= w
		items[i] = navItem{link: links[i], rect: sdl.Rect{X: x, Y: 0, W: w, H: navbarHeight}}
		x -= gap
	}
	return items
}

func (h *Host) hitTest(x, y int32) (string, bool) {
	p := sdl.Point{X: x, Y: y}
	if h.topVisible != nil && h.topVisible.Above() && p.InRect(&h.topRect) {
		return "", true
	}
	for _, item := range h.nav {
		if p.InRect(&item.rect) {
			return item.link.Href, false
		}
	}
	return "", false
}

// Close detaches the controller and releases every SDL resource.
func (h *Host) Close() {
	if h.controller != nil {
		h.controller.Detach()
	}
	if h.navbarScrolled != nil {
		h.navbarScrolled.Close()
	}
	if h.topVisible != nil {
		h.topVisible.Close()
	}
	if h.cache != nil {
		h.cache.Destroy()
	}
	if h.icon != nil {
		h.icon.Destroy()
	}
	if h.fonts != nil {
		h.fonts.close()
	}
	if h.window != nil {
		h.window.close()
	}
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}
