package embed

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"native-embed/src/bridge"
)

const fakeRendererWindow bridge.Handle = 0xBEEF

// journal records calls across the fakes in the order they happen.
type journal struct{ calls []string }

func (j *journal) add(format string, args ...any) {
	j.calls = append(j.calls, fmt.Sprintf(format, args...))
}

func (j *journal) count(call string) int {
	n := 0
	for _, c := range j.calls {
		if c == call {
			n++
		}
	}
	return n
}

type fakeRenderer struct {
	j *journal

	initErr     error
	shouldClose bool
	// onEndFrame runs inside EndFrame, like messages dispatched by the
	// renderer's event polling.
	onEndFrame func()
	open       bool
}

func (r *fakeRenderer) SetUndecorated() { r.j.add("SetUndecorated") }

func (r *fakeRenderer) Init(width, height int, title string) error {
	r.j.add("Init(%d, %d, %q)", width, height, title)
	if r.initErr != nil {
		return r.initErr
	}
	r.open = true
	return nil
}

func (r *fakeRenderer) SetTargetFPS(fps int) { r.j.add("SetTargetFPS(%d)", fps) }

func (r *fakeRenderer) WindowHandle() bridge.Handle {
	if !r.open {
		return 0
	}
	return fakeRendererWindow
}

func (r *fakeRenderer) ShouldClose() bool { return r.shouldClose }

func (r *fakeRenderer) BeginFrame() { r.j.add("BeginFrame") }

func (r *fakeRenderer) Clear(c color.RGBA) { r.j.add("Clear(%v)", c) }

func (r *fakeRenderer) Draw() { r.j.add("Draw") }

func (r *fakeRenderer) EndFrame() {
	r.j.add("EndFrame")
	if r.onEndFrame != nil {
		r.onEndFrame()
	}
}

func (r *fakeRenderer) Close() {
	r.j.add("Close")
	r.open = false
}

type fakeBridge struct {
	j    *journal
	fail string
}

var errBridge = errors.New("bridge call rejected")

func (b *fakeBridge) record(call string) error {
	b.j.add("%s", call)
	if b.fail != "" && b.fail == call[:len(b.fail)] {
		return errBridge
	}
	return nil
}

func (b *fakeBridge) Reparent(child, parent bridge.Handle) error {
	return b.record(fmt.Sprintf("Reparent(%#x, %#x)", child, parent))
}

func (b *fakeBridge) SetChildStyle(window bridge.Handle) error {
	return b.record(fmt.Sprintf("SetChildStyle(%#x)", window))
}

func (b *fakeBridge) Reposition(window bridge.Handle, x, y int) error {
	return b.record(fmt.Sprintf("Reposition(%#x, %d, %d)", window, x, y))
}

func (b *fakeBridge) Show(window bridge.Handle) error {
	return b.record(fmt.Sprintf("Show(%#x)", window))
}

// fakeTicker is driven by hand with fire; it refuses to fire once stopped,
// but a test can still deliver a queued tick through the captured func.
type fakeTicker struct {
	j        *journal
	startErr error
	interval time.Duration
	tick     func()
	running  bool
	stops    int
}

func (t *fakeTicker) Start(interval time.Duration, tick func()) error {
	t.j.add("Ticker.Start")
	if t.startErr != nil {
		return t.startErr
	}
	t.interval = interval
	t.tick = tick
	t.running = true
	return nil
}

func (t *fakeTicker) Stop() {
	if t.running {
		t.j.add("Ticker.Stop")
	}
	t.running = false
	t.stops++
}

// fire delivers one tick if the ticker is running and reports whether it did.
func (t *fakeTicker) fire() bool {
	if !t.running {
		return false
	}
	t.tick()
	return true
}

type rig struct {
	j        *journal
	renderer *fakeRenderer
	bridge   *fakeBridge
	ticker   *fakeTicker
	c        *Controller
}

func newRig() *rig {
	j := &journal{}
	r := &rig{
		j:        j,
		renderer: &fakeRenderer{j: j},
		bridge:   &fakeBridge{j: j},
		ticker:   &fakeTicker{j: j},
	}
	r.c = New(r.renderer, r.bridge, r.ticker, Options{})
	return r
}

func (r *rig) bridgeCalls() []string {
	var out []string
	for _, c := range r.j.calls {
		for _, p := range []string{"Reparent", "SetChildStyle", "Reposition", "Show"} {
			if len(c) >= len(p) && c[:len(p)] == p {
				out = append(out, c)
			}
		}
	}
	return out
}
