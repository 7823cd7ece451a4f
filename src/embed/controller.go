package embed

import (
	"fmt"
	"log"

	"native-embed/src/bridge"
)

// Controller embeds one renderer window into a host container and drives it
// from the host's tick. It is not safe for concurrent use: Attach, Pump and
// Shutdown MUST be invoked from the single host-loop thread.
type Controller struct {
	renderer Renderer
	bridge   bridge.Bridge
	ticker   Ticker
	opts     Options

	state  State
	window bridge.Handle
	// finished is set when the one attachment cycle begins. Once the state
	// is Detached again, by teardown or a setup failure, Attach is a no-op.
	finished bool

	// pumping is set while a frame is in flight. The renderer may dispatch
	// host messages from inside EndFrame, which can re-enter Pump or
	// Shutdown on the same thread.
	pumping         bool
	shutdownPending bool

	stats Stats
}

// New creates a detached controller.
func New(r Renderer, b bridge.Bridge, t Ticker, opts Options) *Controller {
	return &Controller{
		renderer: r,
		bridge:   b,
		ticker:   t,
		opts:     opts.withDefaults(),
	}
}

// State reports the current attachment state.
func (c *Controller) State() State { return c.state }

// Window returns the embedded renderer window, or 0 when detached.
func (c *Controller) Window() bridge.Handle { return c.window }

// Stats returns frame and teardown counters.
func (c *Controller) Stats() Stats { return c.stats }

// Attach initialises the renderer at width x height, reparents its window
// under container and starts ticking. A second Attach while attached is
// ignored, as is any Attach after the renderer was torn down or failed to
// embed. Any returned error is a setup failure and is not retried.
func (c *Controller) Attach(container bridge.Handle, width, height int) error {
	if c.state == Attached {
		log.Printf("EMBED: attach to %#x ignored: %v", container, ErrAlreadyAttached)
		return nil
	}
	if c.finished {
		log.Printf("EMBED: attach to %#x ignored: %v", container, ErrFinished)
		return nil
	}
	c.finished = true

	log.Printf("EMBED: attaching %dx%d renderer to container %#x", width, height, container)
	c.renderer.SetUndecorated()
	if err := c.renderer.Init(width, height, c.opts.Title); err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	c.renderer.SetTargetFPS(c.opts.TargetFPS)
	window := c.renderer.WindowHandle()

	if err := c.embed(window, container); err != nil {
		c.renderer.Close()
		return err
	}
	if err := c.ticker.Start(c.opts.TickInterval(), c.Pump); err != nil {
		c.renderer.Close()
		return fmt.Errorf("failed to start tick source: %w", err)
	}

	c.window = window
	c.state = Attached
	log.Printf("EMBED: renderer window %#x attached, ticking every %v", window, c.opts.TickInterval())
	return nil
}

func (c *Controller) embed(window, container bridge.Handle) error {
	if err := c.bridge.Reparent(window, container); err != nil {
		return fmt.Errorf("failed to reparent renderer window: %w", err)
	}
	if err := c.bridge.SetChildStyle(window); err != nil {
		return fmt.Errorf("failed to restyle renderer window: %w", err)
	}
	if err := c.bridge.Reposition(window, 0, 0); err != nil {
		return fmt.Errorf("failed to position renderer window: %w", err)
	}
	if err := c.bridge.Show(window); err != nil {
		return fmt.Errorf("failed to show renderer window: %w", err)
	}
	return nil
}

// Pump is the tick body. It draws exactly one frame, or tears the renderer
// down when it asks to close. Ticks arriving while detached are no-ops.
func (c *Controller) Pump() {
	if c.state != Attached || c.pumping {
		return
	}
	if c.renderer.ShouldClose() {
		log.Printf("EMBED: renderer requested close")
		c.teardown()
		return
	}

	c.pumping = true
	c.renderer.BeginFrame()
	c.renderer.Clear(c.opts.Background)
	c.renderer.Draw()
	c.renderer.EndFrame()
	c.pumping = false
	c.stats.Frames++

	if c.shutdownPending {
		c.teardown()
	}
}

// Shutdown tears the renderer down on host close, whether or not the
// renderer asked to close. Calling it while detached is a no-op.
func (c *Controller) Shutdown() {
	if c.state != Attached {
		return
	}
	log.Printf("EMBED: host shutdown")
	if c.pumping {
		// Shutdown arrived from inside the frame. Cancel ticking now and
		// release the renderer once the frame is finished.
		c.ticker.Stop()
		c.shutdownPending = true
		return
	}
	c.teardown()
}

func (c *Controller) teardown() {
	if c.state != Attached {
		return
	}
	c.ticker.Stop()
	c.renderer.Close()
	c.window = 0
	c.state = Detached
	c.shutdownPending = false
	c.stats.Teardowns++
	log.Printf("EMBED: renderer detached after %d frames", c.stats.Frames)
}
