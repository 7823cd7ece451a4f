package host

import (
	"errors"
	"sync/atomic"
	"time"

	"native-embed/src/bridge"
)

// ErrUnsupported is returned by Run on platforms without a Win32 shell.
var ErrUnsupported = errors.New("host shell is only available on Windows")

// Options configures the host shell window.
type Options struct {
	Title string
	// Width and Height are the fixed client size of the container panel.
	Width  int
	Height int
}

// ReadyFunc receives the container panel once the host window is shown.
type ReadyFunc func(container bridge.Handle, width, height int)

// ClosingFunc releases whatever lives inside the container. It returns true
// once nothing does, and may be called again until it does.
type ClosingFunc func() (released bool)

// Host is the top-level shell window. It owns the message loop and the
// container panel the renderer is embedded into. One Host per process.
type Host struct {
	opts      Options
	onReady   ReadyFunc
	onClosing ClosingFunc

	// closePending is set by WM_CLOSE. The window is only destroyed from the
	// outermost loop level once onClosing reports the container released:
	// WM_CLOSE can be dispatched from a message pump nested inside a frame,
	// while the embedded window is still in use.
	closePending bool

	hwnd      atomic.Uintptr
	container bridge.Handle
	ticker    *Ticker
}

// New creates a host. Nothing is created on screen until Run.
func New(opts Options) *Host {
	h := &Host{opts: opts}
	h.ticker = &Ticker{host: h}
	return h
}

// OnReady registers the container-ready handler. Must be called before Run.
func (h *Host) OnReady(fn ReadyFunc) { h.onReady = fn }

// OnClosing registers the host-closing handler. It runs on the loop thread
// when a close is requested and again after each dispatched message until it
// reports the container released; only then is the host window destroyed.
// Must be called before Run.
func (h *Host) OnClosing(fn ClosingFunc) { h.onClosing = fn }

// Ticker returns the tick source dispatched through this host's loop.
func (h *Host) Ticker() *Ticker { return h.ticker }

// Container returns the container panel, or 0 before the window exists.
func (h *Host) Container() bridge.Handle { return h.container }

func (h *Host) requestClose() {
	h.closePending = true
	h.runClosing()
}

// takeClose reports whether a pending close may destroy the window now. It
// must only be called from the outermost loop level.
func (h *Host) takeClose() bool {
	if !h.closePending || !h.runClosing() {
		return false
	}
	h.closePending = false
	return true
}

func (h *Host) runClosing() bool {
	if h.onClosing == nil {
		return true
	}
	return h.onClosing()
}

// Ticker is a periodic callback delivered as timer messages to the host
// window, so every tick runs on the host loop thread. Start and Stop must be
// called on that thread.
type Ticker struct {
	host    *Host
	tick    func()
	running bool
}

// Start begins delivering tick every interval. Starting a running ticker
// replaces its callback and interval.
func (t *Ticker) Start(interval time.Duration, tick func()) error {
	if err := t.host.setTimer(interval); err != nil {
		return err
	}
	t.tick = tick
	t.running = true
	return nil
}

// Stop cancels the ticker. Pending tick messages are discarded. Stopping a
// stopped ticker is a no-op.
func (t *Ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	t.host.killTimer()
}

// Running reports whether ticks are being delivered.
func (t *Ticker) Running() bool { return t.running }

func (t *Ticker) fire() {
	if t.running && t.tick != nil {
		t.tick()
	}
}
