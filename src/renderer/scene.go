package renderer

import "image/color"

// Scene is the decorative content drawn in every frame.
type Scene struct {
	Greeting     string
	GreetingY    int
	GreetingSize int
	Foreground   color.RGBA
	// ShowFPS draws the frame counter in the top-left corner.
	ShowFPS bool
}

// DefaultScene returns a centred white greeting with an FPS counter.
func DefaultScene() Scene {
	return Scene{
		Greeting:     "Hi, I'm Raylib!",
		GreetingY:    80,
		GreetingSize: 24,
		Foreground:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ShowFPS:      true,
	}
}

// centeredX returns the x offset that centres a run of textWidth pixels in a
// surface of the given width.
func centeredX(width, textWidth int) int {
	return width/2 - textWidth/2
}
