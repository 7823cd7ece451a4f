//go:build windows

package bridge

import (
	"fmt"
	"log"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	user32           = windows.NewLazySystemDLL("user32.dll")
	procSetLastError = kernel32.NewProc("SetLastError")
	procIsWindow     = user32.NewProc("IsWindow")
)

type win32Bridge struct{}

func newPlatformBridge() Bridge { return win32Bridge{} }

func (win32Bridge) Reparent(child, parent Handle) error {
	if err := checkWindows(child, parent); err != nil {
		return err
	}
	clearLastError()
	if prev := win.SetParent(win.HWND(child), win.HWND(parent)); prev == 0 {
		if err := lastError(); err != nil {
			return fmt.Errorf("SetParent(%#x, %#x): %w", child, parent, err)
		}
	}
	log.Printf("BRIDGE: reparented %#x under %#x", child, parent)
	return nil
}

func (win32Bridge) SetChildStyle(window Handle) error {
	if err := checkWindows(window); err != nil {
		return err
	}
	// Read first: the renderer's init sets bits (WS_POPUP, no caption) that
	// a blind write would drop.
	style := uint32(win.GetWindowLong(win.HWND(window), win.GWL_STYLE))
	style |= win.WS_CHILD | win.WS_VISIBLE

	clearLastError()
	if prev := win.SetWindowLong(win.HWND(window), win.GWL_STYLE, int32(style)); prev == 0 {
		if err := lastError(); err != nil {
			return fmt.Errorf("SetWindowLong(%#x, GWL_STYLE): %w", window, err)
		}
	}
	log.Printf("BRIDGE: style of %#x set to %#08x", window, style)
	return nil
}

func (win32Bridge) Reposition(window Handle, x, y int) error {
	if err := checkWindows(window); err != nil {
		return err
	}
	if !win.SetWindowPos(win.HWND(window), 0, int32(x), int32(y), 0, 0, win.SWP_NOZORDER|win.SWP_NOSIZE) {
		return fmt.Errorf("SetWindowPos(%#x, %d, %d): %w", window, x, y, lastErrorOr(ErrInvalidHandle))
	}
	return nil
}

func (win32Bridge) Show(window Handle) error {
	if err := checkWindows(window); err != nil {
		return err
	}
	// ShowWindow reports the previous visibility, not success.
	win.ShowWindow(win.HWND(window), win.SW_SHOWNORMAL)
	return nil
}

func checkWindows(handles ...Handle) error {
	for _, h := range handles {
		if h == 0 {
			return fmt.Errorf("%w: %#x", ErrInvalidHandle, h)
		}
		if ok, _, _ := procIsWindow.Call(uintptr(h)); ok == 0 {
			return fmt.Errorf("%w: %#x", ErrInvalidHandle, h)
		}
	}
	return nil
}

// clearLastError resets the thread's last-error code so a zero return from
// SetParent or SetWindowLong can be told apart from a failure.
func clearLastError() {
	_, _, _ = procSetLastError.Call(0)
}

func lastError() error {
	if code := win.GetLastError(); code != 0 {
		return windows.Errno(code)
	}
	return nil
}

func lastErrorOr(fallback error) error {
	if err := lastError(); err != nil {
		return err
	}
	return fallback
}
