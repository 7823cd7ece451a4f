package bridge

import "errors"

// Handle is a raw native window identifier (an HWND on Windows).
type Handle uintptr

var (
	// ErrInvalidHandle is returned when a handle does not name a live window.
	ErrInvalidHandle = errors.New("invalid window handle")
	// ErrUnsupported is returned on platforms without a window-handle model.
	ErrUnsupported = errors.New("native window embedding is not supported on this platform")
)

// Bridge is the capability boundary over platform window-handle operations.
// Implementations are stateless: they never retain, own or destroy the
// handles passed to them.
//
// Callers embedding a window must issue the calls in the order
// Reparent, SetChildStyle, Reposition, Show.
type Bridge interface {
	// Reparent makes child a child window of parent. Coordinates of child
	// become relative to parent afterwards.
	Reparent(child, parent Handle) error
	// SetChildStyle ORs the child and visible style bits into the current
	// window style, keeping every other bit.
	SetChildStyle(window Handle) error
	// Reposition moves window to (x, y) in its parent's client space without
	// changing its size or z-order.
	Reposition(window Handle, x, y int) error
	// Show forces the window into its normal visible state.
	Show(window Handle) error
}

// New returns the platform implementation.
func New() Bridge {
	return newPlatformBridge()
}
