package sprig

import "errors"

// Driver connects a host to a Registry and a Surface. It processes input
// events synchronously, in delivery order, and runs a paint cycle for every
// paint request. Paint observes the state left by the last processed event.
type Driver struct {
	reg     *Registry
	surface Surface
	handler ErrorHandler
	closed  bool
	frames  int
	dropped int
}

// NewDriver creates a driver painting reg onto surface. Frame failures are
// reported to a LogHandler until SetErrorHandler replaces it.
func NewDriver(reg *Registry, surface Surface) *Driver {
	return &Driver{
		reg:     reg,
		surface: surface,
		handler: &LogHandler{},
	}
}

// SetErrorHandler sets the handler receiving frame and resize failures.
// Passing nil restores the stderr LogHandler.
func (d *Driver) SetErrorHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	d.handler = h
}

// Registry returns the driven registry.
func (d *Driver) Registry() *Registry { return d.reg }

// Surface returns the surface painted on each paint request.
func (d *Driver) Surface() Surface { return d.surface }

// Closed reports whether a teardown event has been handled.
func (d *Driver) Closed() bool { return d.closed }

// Frames returns the number of completed paint cycles.
func (d *Driver) Frames() int { return d.frames }

// Dropped returns the number of paint cycles that failed.
func (d *Driver) Dropped() int { return d.dropped }

// Handle processes one event to completion. Frame and resize failures are
// reported to the error handler, counted, and returned as well; the driver
// stays usable. After teardown Handle returns ErrClosed.
func (d *Driver) Handle(ev InputEvent) error {
	if d.closed {
		return ErrClosed
	}
	switch ev.Kind {
	case InputPointerMove:
		d.reg.DispatchHover(ev.X, ev.Y)
	case InputPointerPress:
		d.reg.DispatchPress(ev.X, ev.Y)
	case InputPointerRelease:
		d.reg.DispatchRelease()
	case InputChar:
		d.reg.DispatchChar(ev.Char)
	case InputKeyDown:
		d.reg.DispatchKeyDown(ev.Key)
	case InputResize:
		if err := d.surface.Resize(ev.Width, ev.Height); err != nil {
			err = &FrameError{Op: "resize", Kind: KindResize, Err: err}
			d.handler.HandleError(err)
			return err
		}
	case InputPaint:
		return d.Paint()
	case InputTeardown:
		d.reg.Teardown()
		d.closed = true
	}
	return nil
}

// Paint runs one paint cycle. A failed cycle is reported and dropped.
func (d *Driver) Paint() error {
	if d.closed {
		return ErrClosed
	}
	if err := d.reg.PaintAll(d.surface); err != nil {
		d.dropped++
		d.handler.HandleError(err)
		return err
	}
	d.frames++
	return nil
}

// Replay handles events in order. Dropped frames do not stop the replay;
// any other error does and is returned.
func (d *Driver) Replay(events []InputEvent) error {
	for _, ev := range events {
		if err := d.Handle(ev); err != nil {
			var fe *FrameError
			if errors.As(err, &fe) {
				continue
			}
			return err
		}
	}
	return nil
}
