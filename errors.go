package sprig

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors returned by drivers and surfaces.
var (
	ErrClosed      = errors.New("sprig: driver closed")
	ErrNoTarget    = errors.New("sprig: surface has no target")
	ErrFrameActive = errors.New("sprig: frame already begun")
	ErrNoFrame     = errors.New("sprig: no frame in progress")
)

// ErrorKind identifies the category of a paint subsystem error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates the surface or text shaper could not be created.
	KindInit
	// KindFrame indicates a paint cycle failed to complete.
	KindFrame
	// KindResize indicates the surface rejected a resize.
	KindResize
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindFrame:
		return "frame"
	case KindResize:
		return "resize"
	default:
		return "unknown"
	}
}

// InitError reports that a paint collaborator failed to initialize. The
// paint subsystem is unusable; there is no retry.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("sprig: init %s: %v", e.Op, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// FrameError reports a paint cycle or resize that failed. The frame is
// dropped; the next paint request starts a fresh cycle.
type FrameError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("sprig: %s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// ErrorHandler receives errors the host cannot return to a caller, such as
// frame failures inside a game loop.
type ErrorHandler interface {
	HandleError(err error)
}

// ErrorHandlerFunc adapts a function to ErrorHandler.
type ErrorHandlerFunc func(err error)

// HandleError calls f(err).
func (f ErrorHandlerFunc) HandleError(err error) { f(err) }

// LogHandler is an ErrorHandler that logs errors to W, or stderr when W is
// nil.
type LogHandler struct {
	W io.Writer
}

// HandleError logs err with its kind when known.
func (h *LogHandler) HandleError(err error) {
	if err == nil {
		return
	}
	w := h.W
	if w == nil {
		w = os.Stderr
	}
	var fe *FrameError
	var ie *InitError
	switch {
	case errors.As(err, &fe):
		_, _ = fmt.Fprintf(w, "[sprig] %s failed (%s), frame dropped: %v\n", fe.Op, fe.Kind, fe.Err)
	case errors.As(err, &ie):
		_, _ = fmt.Fprintf(w, "[sprig] %s failed (init): %v\n", ie.Op, ie.Err)
	default:
		_, _ = fmt.Fprintf(w, "[sprig] error: %v\n", err)
	}
}
