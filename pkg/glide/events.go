package glide

import (
	"sort"

	"github.com/BrandonKowalski/glide/pkg/glide/constants"
)

// EventKind identifies the platform input a listener subscribes to.
type EventKind int

const (
	EventWheel EventKind = iota
	EventTouchStart
	EventTouchMove
	EventTouchEnd
	EventKeyDown
	EventActivate // Pointer activation of a link
	EventScroll   // The surface offset changed, by any means
)

func (k EventKind) String() string {
	switch k {
	case EventWheel:
		return "wheel"
	case EventTouchStart:
		return "touchstart"
	case EventTouchMove:
		return "touchmove"
	case EventTouchEnd:
		return "touchend"
	case EventKeyDown:
		return "keydown"
	case EventActivate:
		return "activate"
	case EventScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Event is one unit of platform input. Only the fields relevant to Kind are
// set.
type Event struct {
	Kind EventKind

	// Wheel: DeltaY in pixels (positive scrolls forward) and the granularity
	// the device reported it in.
	DeltaY    float64
	DeltaMode constants.WheelMode

	// Touch: finger position in viewport pixels.
	TouchY float64

	// KeyDown.
	Key constants.Key

	// Activate: href of the nearest enclosing link, empty when none.
	Href string
}

// Listener handles one event and says whether the default action should be
// suppressed.
type Listener func(Event) Disposition

// EventSource is where the controller subscribes to input. The returned
// function removes the listener; calling it more than once is safe.
type EventSource interface {
	AddListener(kind EventKind, listener Listener) (remove func())
}

// Dispatcher is an EventSource that hosts feed events into. It is not safe
// for concurrent use; hosts dispatch from their event loop.
type Dispatcher struct {
	nextID    uint64
	listeners map[EventKind]map[uint64]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventKind]map[uint64]Listener),
	}
}

func (d *Dispatcher) AddListener(kind EventKind, listener Listener) func() {
	d.nextID++
	id := d.nextID

	if d.listeners[kind] == nil {
		d.listeners[kind] = make(map[uint64]Listener)
	}
	d.listeners[kind][id] = listener

	return func() {
		delete(d.listeners[kind], id)
	}
}

// Dispatch delivers ev to every listener of its kind in subscription order.
// The result is PreventDefault if any listener consumed the event.
func (d *Dispatcher) Dispatch(ev Event) Disposition {
	byID := d.listeners[ev.Kind]
	if len(byID) == 0 {
		return PassThrough
	}

	ids := make([]uint64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := PassThrough
	for _, id := range ids {
		listener, ok := byID[id]
		if !ok {
			continue
		}
		if listener(ev) == PreventDefault {
			result = PreventDefault
		}
	}
	return result
}

// ListenerCount returns the number of live listeners across all kinds.
func (d *Dispatcher) ListenerCount() int {
	n := 0
	for _, byID := range d.listeners {
		n += len(byID)
	}
	return n
}
