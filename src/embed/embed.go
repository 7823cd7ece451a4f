package embed

import (
	"errors"
	"image/color"
	"time"

	"native-embed/src/bridge"
)

const (
	// DefaultTickRate samples the renderer faster than its own frame target so
	// close latency is not bounded by the sampling granularity.
	DefaultTickRate  = 120
	DefaultTargetFPS = 60
	DefaultTitle     = "raylib in a Go host"
)

// ErrAlreadyAttached is reported (and swallowed) when Attach is called on an
// attached controller.
var ErrAlreadyAttached = errors.New("renderer already attached")

// ErrFinished is reported (and swallowed) when Attach is called after the
// controller's single attachment cycle has ended.
var ErrFinished = errors.New("attachment cycle already finished")

// State is the attachment state of a Controller.
type State int

const (
	Detached State = iota
	Attached
)

func (s State) String() string {
	switch s {
	case Detached:
		return "detached"
	case Attached:
		return "attached"
	default:
		return "unknown"
	}
}

// Renderer is the frame-producing engine that owns the embedded native
// window. All methods are called from the host loop thread.
type Renderer interface {
	// SetUndecorated marks the next window as having no title bar or border.
	SetUndecorated()
	Init(width, height int, title string) error
	SetTargetFPS(fps int)
	// WindowHandle is only meaningful between Init and Close.
	WindowHandle() bridge.Handle
	ShouldClose() bool
	BeginFrame()
	Clear(c color.RGBA)
	// Draw issues the renderer's own draw calls for one frame.
	Draw()
	EndFrame()
	Close()
}

// Ticker is a periodic callback dispatched through the host's own loop.
// Stop must be idempotent and must prevent any further tick before it
// returns.
type Ticker interface {
	Start(interval time.Duration, tick func()) error
	Stop()
}

// Options configures a Controller. Zero values select the defaults.
type Options struct {
	Title      string
	TargetFPS  int
	TickRate   int
	Background color.RGBA
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.TargetFPS <= 0 {
		o.TargetFPS = DefaultTargetFPS
	}
	if o.TickRate <= 0 {
		o.TickRate = DefaultTickRate
	}
	if o.Background == (color.RGBA{}) {
		o.Background = color.RGBA{A: 255}
	}
	return o
}

// TickInterval is the period between two ticks.
func (o Options) TickInterval() time.Duration {
	return time.Second / time.Duration(o.withDefaults().TickRate)
}

// Stats counts what a Controller has done during its lifetime.
type Stats struct {
	Frames    int
	Teardowns int
}
