package tray

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"testing"
)

func TestIcon(t *testing.T) {
	ico, err := Icon()
	if err != nil {
		t.Fatalf("Icon failed: %v", err)
	}
	if len(ico) < 22 {
		t.Fatalf("icon too short: %d bytes", len(ico))
	}
	if typ := binary.LittleEndian.Uint16(ico[2:4]); typ != 1 {
		t.Errorf("Expected ICO type 1, got %d", typ)
	}
	size := binary.LittleEndian.Uint32(ico[14:18])
	offset := binary.LittleEndian.Uint32(ico[18:22])
	if int(offset+size) != len(ico) {
		t.Errorf("directory entry does not cover payload: offset=%d size=%d len=%d", offset, size, len(ico))
	}
	img, err := png.Decode(bytes.NewReader(ico[offset:]))
	if err != nil {
		t.Fatalf("payload is not PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != iconSize || b.Dy() != iconSize {
		t.Errorf("Expected %dx%d icon, got %v", iconSize, iconSize, b)
	}
}

func TestQuitRequestedOnce(t *testing.T) {
	calls := 0
	tr := New(Config{OnQuit: func() { calls++ }})

	tr.requestQuit()
	tr.requestQuit()

	if calls != 1 {
		t.Errorf("Expected OnQuit once, got %d", calls)
	}
}
