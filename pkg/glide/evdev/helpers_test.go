package evdev

import (
	"errors"
	"os"
	"sync"

	goevdev "github.com/holoplot/go-evdev"
)

// fakeDevice replays queued events and blocks once they run out, like a
// real device with no input pending.
type fakeDevice struct {
	events chan *goevdev.InputEvent
	done   chan struct{}
	once   sync.Once
	fail   error
	closes int
	mu     sync.Mutex
}

func newFakeDevice(events ...*goevdev.InputEvent) *fakeDevice {
	d := &fakeDevice{
		events: make(chan *goevdev.InputEvent, len(events)+16),
		done:   make(chan struct{}),
	}
	for _, ev := range events {
		d.events <- ev
	}
	return d
}

func (d *fakeDevice) ReadOne() (*goevdev.InputEvent, error) {
	select {
	case ev := <-d.events:
		return ev, nil
	case <-d.done:
		if d.fail != nil {
			return nil, d.fail
		}
		return nil, os.ErrClosed
	}
}

func (d *fakeDevice) Close() error {
	d.mu.Lock()
	d.closes++
	d.mu.Unlock()
	d.once.Do(func() { close(d.done) })
	return nil
}

func (d *fakeDevice) closeCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closes
}

var errUnplugged = errors.New("no such device")

func rel(code goevdev.EvCode, v int32) *goevdev.InputEvent {
	return &goevdev.InputEvent{Type: goevdev.EV_REL, Code: code, Value: v}
}

func abs(code goevdev.EvCode, v int32) *goevdev.InputEvent {
	return &goevdev.InputEvent{Type: goevdev.EV_ABS, Code: code, Value: v}
}

func key(code goevdev.EvCode, v int32) *goevdev.InputEvent {
	return &goevdev.InputEvent{Type: goevdev.EV_KEY, Code: code, Value: v}
}

func syn() *goevdev.InputEvent {
	return &goevdev.InputEvent{Type: goevdev.EV_SYN, Code: goevdev.SYN_REPORT}
}
