package renderer

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"native-embed/src/bridge"
)

const fpsCounterOffset = 3

// Raylib drives a single raylib window. raylib keeps its window in global
// state, so only one Raylib may be initialised per process.
type Raylib struct {
	scene  Scene
	width  int
	height int
	ready  bool
}

// NewRaylib returns an uninitialised renderer that draws scene.
func NewRaylib(scene Scene) *Raylib {
	return &Raylib{scene: scene}
}

func (r *Raylib) SetUndecorated() {
	rl.SetConfigFlags(rl.FlagWindowUndecorated)
}

func (r *Raylib) Init(width, height int, title string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}
	log.Printf("RENDERER: initializing %dx%d window %q", width, height, title)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return errors.New("raylib window is not ready after InitWindow")
	}
	r.width, r.height = width, height
	r.ready = true
	return nil
}

func (r *Raylib) SetTargetFPS(fps int) {
	rl.SetTargetFPS(int32(fps))
}

func (r *Raylib) WindowHandle() bridge.Handle {
	if !r.ready {
		return 0
	}
	return bridge.Handle(rl.GetWindowHandle())
}

func (r *Raylib) ShouldClose() bool {
	return r.ready && rl.WindowShouldClose()
}

func (r *Raylib) BeginFrame() { rl.BeginDrawing() }

func (r *Raylib) Clear(c color.RGBA) { rl.ClearBackground(c) }

func (r *Raylib) Draw() {
	s := r.scene
	if s.Greeting != "" {
		textWidth := int(rl.MeasureText(s.Greeting, int32(s.GreetingSize)))
		x := centeredX(r.width, textWidth)
		rl.DrawText(s.Greeting, int32(x), int32(s.GreetingY), int32(s.GreetingSize), s.Foreground)
	}
	if s.ShowFPS {
		rl.DrawFPS(fpsCounterOffset, fpsCounterOffset)
	}
}

func (r *Raylib) EndFrame() { rl.EndDrawing() }

func (r *Raylib) Close() {
	if !r.ready {
		return
	}
	log.Printf("RENDERER: closing window")
	rl.CloseWindow()
	r.ready = false
}
