package renderer

import "testing"

func TestCenteredX(t *testing.T) {
	tests := []struct {
		width, text, want int
	}{
		{800, 160, 320},
		{800, 0, 400},
		{801, 161, 320},
		{100, 300, -100},
	}
	for _, tt := range tests {
		if got := centeredX(tt.width, tt.text); got != tt.want {
			t.Errorf("centeredX(%d, %d) = %d, want %d", tt.width, tt.text, got, tt.want)
		}
	}
}

func TestDefaultScene(t *testing.T) {
	s := DefaultScene()
	if s.Greeting != "Hi, I'm Raylib!" {
		t.Errorf("Expected greeting %q, got %q", "Hi, I'm Raylib!", s.Greeting)
	}
	if s.GreetingSize != 24 || s.GreetingY != 80 {
		t.Errorf("Expected greeting at y=80 size 24, got y=%d size=%d", s.GreetingY, s.GreetingSize)
	}
	if s.Foreground.A != 255 {
		t.Errorf("Expected opaque foreground, got %+v", s.Foreground)
	}
}

func TestUninitializedRaylibHasNoWindow(t *testing.T) {
	r := NewRaylib(DefaultScene())
	if h := r.WindowHandle(); h != 0 {
		t.Errorf("Expected no window before Init, got %#x", h)
	}
	if r.ShouldClose() {
		t.Error("uninitialized renderer must not report should-close")
	}
	// Close before Init is a no-op.
	r.Close()
}

func TestInitRejectsEmptySize(t *testing.T) {
	r := NewRaylib(DefaultScene())
	if err := r.Init(0, 600, "x"); err == nil {
		t.Error("Expected error for zero width")
	}
}
