//go:build !windows

package bridge

type unsupportedBridge struct{}

func newPlatformBridge() Bridge { return unsupportedBridge{} }

func (unsupportedBridge) Reparent(child, parent Handle) error      { return ErrUnsupported }
func (unsupportedBridge) SetChildStyle(window Handle) error        { return ErrUnsupported }
func (unsupportedBridge) Reposition(window Handle, x, y int) error { return ErrUnsupported }
func (unsupportedBridge) Show(window Handle) error                 { return ErrUnsupported }
