//go:build windows

package host

import (
	"errors"
	"fmt"
	"log"
	"syscall"
	"time"
	"unsafe"

	"github.com/lxn/win"

	"native-embed/src/bridge"
)

const (
	hostClassName    = "NativeEmbedHost"
	tickTimerID      = 1
	wmContainerReady = win.WM_APP + 1
	headerHeight     = 32
	headerMargin     = 8
)

// current is the host served by hostWndProc.
var current *Host

// Run creates the host window and pumps its message loop until the window
// is destroyed. It must be called from the locked main OS thread.
func (h *Host) Run() error {
	if current != nil {
		return errors.New("host is already running")
	}
	current = h
	defer func() { current = nil }()

	hInst := win.GetModuleHandle(nil)
	className := syscall.StringToUTF16Ptr(hostClassName)
	wndClass := win.WNDCLASSEX{
		CbSize:        uint32(unsafe.Sizeof(win.WNDCLASSEX{})),
		Style:         win.CS_HREDRAW | win.CS_VREDRAW,
		LpfnWndProc:   syscall.NewCallback(hostWndProc),
		HInstance:     hInst,
		HCursor:       win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW)),
		HbrBackground: win.HBRUSH(win.COLOR_BTNFACE + 1),
		LpszClassName: className,
	}
	if atom := win.RegisterClassEx(&wndClass); atom == 0 {
		return fmt.Errorf("failed to register host window class")
	}
	defer win.UnregisterClass(className)

	// Fixed-size frame: resizing after attach is not supported.
	style := uint32(win.WS_OVERLAPPEDWINDOW&^(win.WS_THICKFRAME|win.WS_MAXIMIZEBOX)) | win.WS_CLIPCHILDREN
	rect := win.RECT{Right: int32(h.opts.Width), Bottom: int32(h.opts.Height + headerHeight)}
	win.AdjustWindowRect(&rect, style, false)

	hwnd := win.CreateWindowEx(
		0,
		className,
		syscall.StringToUTF16Ptr(h.opts.Title),
		style,
		win.CW_USEDEFAULT, win.CW_USEDEFAULT,
		rect.Right-rect.Left, rect.Bottom-rect.Top,
		0, 0, hInst, nil,
	)
	if hwnd == 0 {
		return fmt.Errorf("failed to create host window")
	}
	h.hwnd.Store(uintptr(hwnd))
	log.Printf("HOST: window created, hwnd: %v", hwnd)

	createChild(hwnd, "STATIC", h.opts.Title, win.WS_CHILD|win.WS_VISIBLE,
		headerMargin, headerMargin, int32(h.opts.Width)-2*headerMargin, headerHeight-2*headerMargin)
	container := createChild(hwnd, "STATIC", "", win.WS_CHILD|win.WS_VISIBLE|win.WS_CLIPCHILDREN,
		0, headerHeight, int32(h.opts.Width), int32(h.opts.Height))
	if container == 0 {
		win.DestroyWindow(hwnd)
		return fmt.Errorf("failed to create container panel")
	}
	h.container = bridge.Handle(container)
	log.Printf("HOST: container panel %#x (%dx%d)", h.container, h.opts.Width, h.opts.Height)

	win.ShowWindow(hwnd, win.SW_SHOW)
	win.UpdateWindow(hwnd)
	// Delivered once the loop is running, after the window is on screen.
	win.PostMessage(hwnd, wmContainerReady, 0, 0)

	var msg win.MSG
	for {
		ret := win.GetMessage(&msg, 0, 0, 0)
		if ret == 0 { // WM_QUIT
			log.Printf("HOST: WM_QUIT received")
			return nil
		}
		if ret == -1 {
			return fmt.Errorf("GetMessage failed: %d", win.GetLastError())
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)

		if h.takeClose() {
			log.Printf("HOST: container released, destroying window")
			h.ticker.Stop()
			win.DestroyWindow(hwnd)
		}
		// A WM_QUIT posted while a nested pump was running may have been
		// consumed there.
		if h.hwnd.Load() == 0 {
			win.PeekMessage(&msg, 0, win.WM_QUIT, win.WM_QUIT, win.PM_REMOVE)
			log.Printf("HOST: window destroyed, leaving message loop")
			return nil
		}
	}
}

// Close asks the host to close as if the user closed the window. Safe to
// call from any goroutine.
func (h *Host) Close() {
	if hwnd := win.HWND(h.hwnd.Load()); hwnd != 0 {
		win.PostMessage(hwnd, win.WM_CLOSE, 0, 0)
	}
}

func (h *Host) setTimer(interval time.Duration) error {
	hwnd := win.HWND(h.hwnd.Load())
	if hwnd == 0 {
		return errors.New("host window does not exist")
	}
	ms := uint32(interval.Milliseconds())
	if ms == 0 {
		ms = 1
	}
	if win.SetTimer(hwnd, tickTimerID, ms, 0) == 0 {
		return fmt.Errorf("SetTimer failed: %d", win.GetLastError())
	}
	return nil
}

func (h *Host) killTimer() {
	if hwnd := win.HWND(h.hwnd.Load()); hwnd != 0 {
		win.KillTimer(hwnd, tickTimerID)
	}
}

func createChild(parent win.HWND, class, text string, style uint32, x, y, w, h int32) win.HWND {
	return win.CreateWindowEx(
		0,
		syscall.StringToUTF16Ptr(class),
		syscall.StringToUTF16Ptr(text),
		style,
		x, y, w, h,
		parent, 0, win.GetModuleHandle(nil), nil,
	)
}

func hostWndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	h := current
	if h == nil {
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}

	switch msg {
	case wmContainerReady:
		log.Printf("HOST: container ready")
		if h.onReady != nil {
			h.onReady(h.container, h.opts.Width, h.opts.Height)
		}
		return 0

	case win.WM_TIMER:
		if wParam == tickTimerID {
			h.ticker.fire()
			return 0
		}

	case win.WM_CLOSE:
		log.Printf("HOST: WM_CLOSE received")
		h.requestClose()
		return 0

	case win.WM_DESTROY:
		log.Printf("HOST: WM_DESTROY received")
		h.ticker.Stop()
		h.hwnd.Store(0)
		win.PostQuitMessage(0)
		return 0
	}

	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}
