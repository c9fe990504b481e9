//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// Tap reports a fresh left-button press and its position in window
// coordinates, the space the scene is laid out in.
func (in *Input) Tap(window *glfw.Window) (x, y float64, ok bool) {
	if !in.JustClicked(window, glfw.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y = window.GetCursorPos()
	return x, y, true
}
