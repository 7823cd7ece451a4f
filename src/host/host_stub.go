//go:build !windows

package host

import "time"

// Run is unavailable off Windows.
func (h *Host) Run() error { return ErrUnsupported }

// Close is a no-op off Windows.
func (h *Host) Close() {}

func (h *Host) setTimer(interval time.Duration) error { return ErrUnsupported }

func (h *Host) killTimer() {}
