// internal/display/display.go

// Package display hands a finished frame to a screen surface and keeps it
// there until the user closes the window or presses Escape. Presenters only
// read the frame.
package display

import (
	"fmt"
	"image"

	"go-solar-system/internal/logging"
	"go-solar-system/pkg/render"
)

// Frame is a packed 0x00RRGGBB pixel buffer in row-major order.
type Frame struct {
	Pixels  []uint32
	Width   int
	Height  int
	Title   string
	Caption string // optional overlay text; never written into Pixels
}

// FrameFrom wraps a finished framebuffer.
func FrameFrom(fb *render.Framebuffer, title string) Frame {
	return Frame{
		Pixels: fb.Buffer(),
		Width:  fb.Width(),
		Height: fb.Height(),
		Title:  title,
	}
}

// RGBA converts the frame to an opaque RGBA image.
func (f Frame) RGBA() *image.RGBA {
	return render.ImageFromPixels(f.Pixels, f.Width, f.Height)
}

// Validate checks the frame dimensions against its pixel slice.
func (f Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", f.Width, f.Height)
	}
	if len(f.Pixels) < f.Width*f.Height {
		return fmt.Errorf("frame has %d pixels, want %d", len(f.Pixels), f.Width*f.Height)
	}
	return nil
}

// Presenter shows a frame until it is dismissed.
type Presenter interface {
	Present(frame Frame) error
}

// Backend names accepted by New.
const (
	BackendEbiten   = "ebiten"
	BackendRaylib   = "raylib"
	BackendTerminal = "terminal"
	BackendNone     = "none"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendEbiten, BackendRaylib, BackendTerminal, BackendNone}

// Options configures a presenter.
type Options struct {
	HUD bool // draw Frame.Caption over the image
	Log *logging.Logger
}

// New returns the presenter for a backend name.
func New(backend string, opts Options) (Presenter, error) {
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	opts.Log = opts.Log.Named(backend)
	switch backend {
	case BackendEbiten:
		return &EbitenPresenter{opts: opts}, nil
	case BackendRaylib:
		return &RaylibPresenter{opts: opts}, nil
	case BackendTerminal:
		return &TerminalPresenter{opts: opts}, nil
	case BackendNone:
		return nopPresenter{}, nil
	default:
		return nil, fmt.Errorf("unknown display backend %q (want one of %v)", backend, Backends)
	}
}

type nopPresenter struct{}

func (nopPresenter) Present(frame Frame) error {
	return frame.Validate()
}
