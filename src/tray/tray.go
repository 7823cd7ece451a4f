package tray

import (
	"log"
	"runtime"
	"sync"

	"github.com/getlantern/systray"
)

// Config describes the tray icon. OnQuit is called from the tray goroutine
// and must be safe to call from any goroutine.
type Config struct {
	Title   string
	Tooltip string
	OnQuit  func()
}

// Tray is the notification-area icon of the host shell.
type Tray struct {
	cfg      Config
	quitOnce sync.Once
}

func New(cfg Config) *Tray {
	return &Tray{cfg: cfg}
}

// Run shows the icon and blocks until Quit. It locks its goroutine to an OS
// thread because the tray owns a hidden window with its own message queue.
func (t *Tray) Run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	systray.Run(t.onReady, t.onExit)
}

// Quit removes the icon and ends Run.
func (t *Tray) Quit() {
	systray.Quit()
}

func (t *Tray) onReady() {
	if icon, err := Icon(); err == nil {
		systray.SetIcon(icon)
	} else {
		log.Printf("TRAY: failed to build icon: %v", err)
	}
	systray.SetTitle(t.cfg.Title)
	systray.SetTooltip(t.cfg.Tooltip)

	mQuit := systray.AddMenuItem("Quit", "Close the host window")
	go func() {
		for range mQuit.ClickedCh {
			log.Printf("TRAY: quit clicked")
			t.requestQuit()
		}
	}()
}

func (t *Tray) onExit() {}

func (t *Tray) requestQuit() {
	t.quitOnce.Do(func() {
		if t.cfg.OnQuit != nil {
			t.cfg.OnQuit()
		}
	})
}
