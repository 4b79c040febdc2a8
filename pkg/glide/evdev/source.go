// Package evdev feeds Linux input devices into a glide event loop.
//
// A Source reads one device on its own goroutine and hands translated events
// to the host through a channel; the host drains it into a glide.Dispatcher
// from its event loop, which keeps all controller calls on one goroutine.
package evdev

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	goevdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/glide/pkg/glide"
	"github.com/BrandonKowalski/glide/pkg/glide/internal"
)

// Device is the part of an input device the Source reads from.
type Device interface {
	ReadOne() (*goevdev.InputEvent, error)
	Close() error
}

// Source pumps events from a Device into a channel.
type Source struct {
	device     Device
	translator *Translator
	events     chan glide.Event

	started   atomic.Bool
	stopped   atomic.Bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
	err       error
}

// NewSource wraps an already open device.
func NewSource(device Device, translator *Translator) *Source {
	return &Source{
		device:     device,
		translator: translator,
		events:     make(chan glide.Event, 64),
	}
}

// Open opens the device at path and sizes touch input to a viewport of the
// given height.
func Open(path string, viewportHeight float64) (*Source, error) {
	dev, err := goevdev.Open(path)
	if err != nil {
		return nil, glide.NewInfrastructureError("open_device", err)
	}

	axis := AxisRange{}
	if infos, err := dev.AbsInfos(); err == nil {
		if info, ok := infos[goevdev.ABS_MT_POSITION_Y]; ok {
			axis = AxisRange{Min: info.Minimum, Max: info.Maximum}
		} else if info, ok := infos[goevdev.ABS_Y]; ok {
			axis = AxisRange{Min: info.Minimum, Max: info.Maximum}
		}
	}

	name, _ := dev.Name()
	internal.GetInternalLogger().Debug("Opened input device",
		"path", path,
		"name", name,
		"axis_min", axis.Min,
		"axis_max", axis.Max)

	return NewSource(dev, NewTranslator(axis, viewportHeight)), nil
}

// Find returns the path of the first device whose name contains substr,
// matched case-insensitively.
func Find(substr string) (string, error) {
	paths, err := goevdev.ListDevicePaths()
	if err != nil {
		return "", glide.NewInfrastructureError("list_devices", err)
	}

	substr = strings.ToLower(substr)
	for _, p := range paths {
		if strings.Contains(strings.ToLower(p.Name), substr) {
			return p.Path, nil
		}
	}
	return "", glide.NewInfrastructureError("find_device", fmt.Errorf("no input device matching %q", substr))
}

// Events delivers translated events. It is closed once the reader stops.
func (s *Source) Events() <-chan glide.Event {
	return s.events
}

// SetViewportHeight rescales touch input after the host window resized.
// Safe to call while the reader runs.
func (s *Source) SetViewportHeight(h float64) {
	s.translator.SetViewportHeight(h)
}

// Start launches the reader. It stops when ctx is done, Close is called, or
// the device fails. A Source runs at most once: Start after the first call,
// or after Close, does nothing.
func (s *Source) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(2)

	go func() {
		defer s.wg.Done()
		<-ctx.Done()
		s.closeDevice()
	}()

	go func() {
		defer s.wg.Done()
		defer close(s.events)
		defer s.cancel()
		s.read(ctx)
	}()
}

func (s *Source) read(ctx context.Context) {
	logger := internal.GetInternalLogger()

	for {
		ev, err := s.device.ReadOne()
		if err != nil {
			if ctx.Err() == nil && !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
				s.err = glide.NewInfrastructureError("read_device", err)
				logger.Error("Input device read failed", "error", err)
			}
			return
		}

		for _, out := range s.translator.Translate(ev) {
			select {
			case s.events <- out:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Drain dispatches every event already waiting, without blocking. It
// reports false once the source has stopped and the channel is empty.
func (s *Source) Drain(d *glide.Dispatcher) bool {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return false
			}
			d.Dispatch(ev)
		default:
			return true
		}
	}
}

func (s *Source) closeDevice() {
	s.closeOnce.Do(func() {
		if err := s.device.Close(); err != nil {
			internal.GetInternalLogger().Debug("Input device close failed", "error", err)
		}
	})
}

// Close stops the reader, closes the device and waits for the goroutines
// to exit. It returns the read error that stopped the source, if any. The
// events channel is closed afterwards even if Start never ran.
func (s *Source) Close() error {
	if !s.stopped.CompareAndSwap(false, true) {
		return s.err
	}
	if s.started.CompareAndSwap(false, true) {
		s.closeDevice()
		close(s.events)
		return nil
	}
	s.cancel()
	s.wg.Wait()
	return s.err
}

// Devices lists the input devices the process can see.
func Devices() ([]goevdev.InputPath, error) {
	paths, err := goevdev.ListDevicePaths()
	if err != nil {
		return nil, glide.NewInfrastructureError("list_devices", err)
	}
	return paths, nil
}
