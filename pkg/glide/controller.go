package glide

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/glide/pkg/glide/anchor"
	"github.com/BrandonKowalski/glide/pkg/glide/constants"
	"github.com/BrandonKowalski/glide/pkg/glide/internal"
)

// Surface is the scrollable host the controller animates. SetScrollOffset is
// the only externally visible effect of the controller.
type Surface interface {
	ScrollOffset() float64
	SetScrollOffset(y float64)
	ContentHeight() float64
	ViewportHeight() float64
}

// AnchorResolver looks up the top offset of an element by id.
// anchor.Registry implements it.
type AnchorResolver interface {
	ElementOffset(id string) (float64, bool)
}

type surfaceViewport struct {
	Surface
}

func (v surfaceViewport) MaxScroll() float64 {
	return internal.MaxScroll(v.ContentHeight(), v.ViewportHeight())
}

// ControllerOptions configures a Controller. Zero values pick defaults.
type ControllerOptions struct {
	Config  Config         // Tunables; the zero Config means DefaultConfig()
	Frames  FrameScheduler // Frame source; nil creates a FrameLoop returned by Controller.Frames
	Clock   Clock          // Time source; nil uses the wall clock
	Anchors AnchorResolver // Fragment lookup for link activation; nil disables anchor jumps
	Logger  *slog.Logger   // nil uses the internal glide logger
}

// Controller replaces native scrolling of a Surface with an animated
// position. It routes input to the easing and tween drivers and guarantees
// that at most one of them writes the position at any time.
//
// All methods must be called from the host's event loop.
type Controller struct {
	cfg     Config
	surface Surface
	view    surfaceViewport
	source  EventSource
	frames  FrameScheduler
	ownLoop *FrameLoop
	clock   Clock
	anchors AnchorResolver
	logger  *slog.Logger

	track   internal.Track
	easing  *internal.EasingDriver
	tween   *internal.TweenDriver
	gesture *internal.TouchGesture
	history *anchor.Stack

	attached      atomic.Bool
	removers      []func()
	lastAuthority Authority
}

// NewController builds a detached controller for surface, taking input from
// source. Call Attach to start listening.
func NewController(surface Surface, source EventSource, opts ControllerOptions) (*Controller, error) {
	cfg := opts.Config
	if cfg.IsZero() {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:     cfg,
		surface: surface,
		view:    surfaceViewport{surface},
		source:  source,
		frames:  opts.Frames,
		clock:   opts.Clock,
		anchors: opts.Anchors,
		logger:  opts.Logger,
		history: anchor.NewStack(cfg.HistoryLimit),
	}

	if c.frames == nil {
		c.ownLoop = NewFrameLoop()
		c.frames = c.ownLoop
	}
	if c.clock == nil {
		c.clock = SystemClock{}
	}
	if c.logger == nil {
		c.logger = internal.GetInternalLogger()
	}

	c.easing = internal.NewEasingDriver(&c.track, c.view, c.frames, cfg.EaseFactor, cfg.Epsilon)
	c.tween = internal.NewTweenDriver(&c.track, c.view, c.frames, c.clock)
	c.easing.OnSettle(c.noteAuthority)
	c.tween.OnComplete(c.noteAuthority)

	return c, nil
}

// Attach syncs the model to the live offset and subscribes to every input
// kind. Calling it on an attached controller does nothing.
func (c *Controller) Attach() {
	if !c.attached.CompareAndSwap(false, true) {
		return
	}

	live := internal.Clamp(c.surface.ScrollOffset(), c.view.MaxScroll())
	c.track = internal.Track{Current: live, Target: live}

	c.removers = []func(){
		c.source.AddListener(EventWheel, c.onWheel),
		c.source.AddListener(EventTouchStart, c.onTouchStart),
		c.source.AddListener(EventTouchMove, c.onTouchMove),
		c.source.AddListener(EventTouchEnd, c.onTouchEnd),
		c.source.AddListener(EventKeyDown, c.onKeyDown),
		c.source.AddListener(EventActivate, c.onActivate),
		c.source.AddListener(EventScroll, c.onScroll),
	}

	c.logger.Debug("Scroll controller attached", "offset", live, "max_scroll", c.view.MaxScroll())
}

// Detach cancels every pending frame, drops any gesture in progress and
// removes every listener. No callback writes the surface after it returns.
// Calling it on a detached controller does nothing.
func (c *Controller) Detach() {
	if !c.attached.CompareAndSwap(true, false) {
		return
	}

	c.easing.Stop()
	c.tween.Cancel()
	c.gesture = nil

	for _, remove := range c.removers {
		remove()
	}
	c.removers = nil
	c.lastAuthority = AuthorityIdle

	c.logger.Debug("Scroll controller detached", "offset", c.track.Current)
}

func (c *Controller) Attached() bool {
	return c.attached.Load()
}

// Authority reports which driver currently owns the position.
func (c *Controller) Authority() Authority {
	switch {
	case c.tween.Running():
		return AuthorityTweening
	case c.easing.Running():
		return AuthorityEasing
	default:
		return AuthorityIdle
	}
}

// Position returns the animated offset and the offset it is heading to.
func (c *Controller) Position() (current, target float64) {
	return c.track.Current, c.track.Target
}

// Config returns the tunables in use.
func (c *Controller) Config() Config {
	return c.cfg
}

// Frames returns the frame loop the controller created for itself, or nil
// when a scheduler was supplied in ControllerOptions.
func (c *Controller) Frames() *FrameLoop {
	return c.ownLoop
}

// HistoryLen returns how many anchor jumps Back can undo.
func (c *Controller) HistoryLen() int {
	return c.history.Len()
}

// LastJump returns the anchor id Back would leave, if any.
func (c *Controller) LastJump() (string, bool) {
	entry := c.history.Peek()
	if entry == nil {
		return "", false
	}
	return entry.ID, true
}

func (c *Controller) maxScroll() float64 {
	return c.view.MaxScroll()
}

func (c *Controller) noteAuthority() {
	now := c.Authority()
	if now == c.lastAuthority {
		return
	}
	c.logger.Debug("Scroll authority changed",
		"from", c.lastAuthority.String(),
		"to", now.String(),
		"current", c.track.Current,
		"target", c.track.Target)
	c.lastAuthority = now
}

// beginEasing hands the position to the easing driver, revoking any tween
// and any drag in progress.
func (c *Controller) beginEasing() {
	c.dropGesture()
	c.tween.Cancel()
	c.easing.Start()
	c.noteAuthority()
}

// beginTween hands the position to the tween driver, revoking the drift and
// any drag in progress.
func (c *Controller) beginTween(dest float64, duration time.Duration, curve internal.Curve) {
	c.dropGesture()
	c.easing.Stop()
	c.tween.Start(dest, duration, curve)
	c.noteAuthority()
}

// dropGesture forgets a live drag. The rest of that gesture passes through.
func (c *Controller) dropGesture() {
	if c.gesture == nil {
		return
	}
	c.logger.Debug("Touch gesture preempted", "current", c.track.Current, "target", c.track.Target)
	c.gesture = nil
}

func (c *Controller) halt() {
	c.easing.Stop()
	c.tween.Cancel()
	c.noteAuthority()
}

func (c *Controller) onWheel(ev Event) Disposition {
	class := internal.ClassifyWheel(ev.DeltaY, ev.DeltaMode, c.cfg.PrecisionThreshold)

	c.tween.Cancel()
	c.track.Target = internal.Clamp(c.track.Target+ev.DeltaY*c.cfg.wheelGain().For(class), c.maxScroll())
	c.beginEasing()

	return PreventDefault
}

func (c *Controller) onTouchStart(ev Event) Disposition {
	c.halt()
	c.gesture = internal.BeginGesture(ev.TouchY, c.track.Current, c.clock.Now())
	return PassThrough
}

func (c *Controller) onTouchMove(ev Event) Disposition {
	if c.gesture == nil {
		return PassThrough
	}

	target := c.gesture.Move(ev.TouchY, c.clock.Now(), c.cfg.DragGain, c.maxScroll())
	c.track.Target = target
	c.track.Current = target
	c.surface.SetScrollOffset(target)

	return PreventDefault
}

func (c *Controller) onTouchEnd(Event) Disposition {
	if c.gesture == nil {
		return PassThrough
	}

	c.track.Target = c.gesture.Release(c.track.Target, c.cfg.MomentumGain, c.maxScroll())
	c.logger.Debug("Touch released", "velocity", c.gesture.Velocity, "target", c.track.Target)
	c.gesture = nil
	c.beginEasing()

	return PassThrough
}

func (c *Controller) onKeyDown(ev Event) Disposition {
	step, handled := c.keyStep(ev.Key)
	if !handled {
		return PassThrough
	}

	c.tween.Cancel()
	c.track.Target = internal.Clamp(step(c.track.Target), c.maxScroll())
	c.beginEasing()

	return PreventDefault
}

func (c *Controller) keyStep(key constants.Key) (func(target float64) float64, bool) {
	viewport := c.surface.ViewportHeight()
	by := func(delta float64) func(float64) float64 {
		return func(target float64) float64 { return target + delta }
	}

	switch key {
	case constants.KeyArrowDown, constants.KeySpace:
		return by(viewport * c.cfg.KeyStep), true
	case constants.KeyArrowUp:
		return by(-viewport * c.cfg.KeyStep), true
	case constants.KeyPageDown:
		return by(viewport * c.cfg.PageStep), true
	case constants.KeyPageUp:
		return by(-viewport * c.cfg.PageStep), true
	case constants.KeyHome:
		return func(float64) float64 { return 0 }, true
	case constants.KeyEnd:
		return func(float64) float64 { return c.maxScroll() }, true
	default:
		return nil, false
	}
}

func (c *Controller) onActivate(ev Event) Disposition {
	id, ok := anchor.FragmentID(ev.Href)
	if !ok || c.anchors == nil {
		return PassThrough
	}

	top, ok := c.anchors.ElementOffset(id)
	if !ok {
		return PassThrough
	}

	c.jumpTo(id, top-c.cfg.NavbarOffset)
	return PreventDefault
}

func (c *Controller) onScroll(Event) Disposition {
	if c.Authority() != AuthorityIdle {
		return PassThrough
	}

	live := internal.Clamp(c.surface.ScrollOffset(), c.maxScroll())
	c.track.Current = live
	c.track.Target = live
	return PassThrough
}

// jumpTo records the current offset in the history and tweens to raw.
func (c *Controller) jumpTo(id string, raw float64) {
	c.history.Push(id, c.surface.ScrollOffset())
	c.logger.Debug("Anchor jump", "id", id, "destination", raw)
	c.tweenTo(raw, 0, c.cfg.TweenCurve)
}

// tweenTo clamps raw and tweens to it. A zero duration scales with distance.
func (c *Controller) tweenTo(raw float64, duration time.Duration, curveName string) {
	dest := internal.Clamp(raw, c.maxScroll())
	from := internal.Clamp(c.surface.ScrollOffset(), c.maxScroll())

	if math.Abs(dest-from) < c.cfg.Epsilon {
		c.halt()
		c.track.Current = dest
		c.track.Target = dest
		c.surface.SetScrollOffset(dest)
		return
	}

	if duration <= 0 {
		duration = c.cfg.TweenDuration(dest - from)
	}
	c.beginTween(dest, duration, c.cfg.curve(curveName))
}

// ScrollTo tweens to y with a duration scaled to the distance.
func (c *Controller) ScrollTo(y float64) error {
	if !c.Attached() {
		return ErrDetached
	}
	c.tweenTo(y, 0, c.cfg.TweenCurve)
	return nil
}

// ScrollToAnchor tweens to the element with the given id, landing below the
// navbar, and records the jump for Back.
func (c *Controller) ScrollToAnchor(id string) error {
	if !c.Attached() {
		return ErrDetached
	}
	if c.anchors == nil {
		return fmt.Errorf("%w: %q", ErrAnchorNotFound, id)
	}
	top, ok := c.anchors.ElementOffset(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrAnchorNotFound, id)
	}
	c.jumpTo(id, top-c.cfg.NavbarOffset)
	return nil
}

// ScrollToTop tweens to the top over the fixed scroll-to-top duration.
func (c *Controller) ScrollToTop() error {
	if !c.Attached() {
		return ErrDetached
	}
	c.tweenTo(0, c.cfg.ScrollToTopDuration.Duration, c.cfg.ScrollToTopCurve)
	return nil
}

// Back tweens to the offset the page was at before the most recent anchor
// jump.
func (c *Controller) Back() error {
	if !c.Attached() {
		return ErrDetached
	}
	entry := c.history.Pop()
	if entry == nil {
		return ErrHistoryEmpty
	}
	c.logger.Debug("Anchor back", "from", entry.ID, "destination", entry.Offset)
	c.tweenTo(entry.Offset, 0, c.cfg.TweenCurve)
	return nil
}
