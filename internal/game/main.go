//go:build !android

package game

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"soundbubbles/internal/config"
	"soundbubbles/internal/log"
	"soundbubbles/internal/mic"
	"soundbubbles/internal/render"
)

// RunDesktop opens the window and runs the frame loop until the window is
// closed or Escape is pressed. Startup failures are returned; failures
// inside a frame are shown on screen instead.
func RunDesktop(opts config.Options, l *log.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(opts.Width, opts.Height, opts.Fullscreen)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	l.Debugf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))
	gl.Enable(gl.MULTISAMPLE)

	fonts, err := render.LoadFonts()
	if err != nil {
		return fmt.Errorf("fonts: %w", err)
	}
	avatars := LoadAvatars(opts.AssetsDir, l)

	rend, err := NewRenderer(fonts, avatars)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	winW, winH := window.GetSize()
	session := NewSession(winW, winH, opts, fonts, len(avatars), mic.DefaultOpener(), l)
	defer session.Close()
	input := NewInput()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if input.JustPressed(window, glfw.KeyEscape) {
			window.SetShouldClose(true)
			continue
		}

		// Minimised windows report a zero size; skip until restored.
		winW, winH := window.GetSize()
		fbW, fbH := window.GetFramebufferSize()
		if winW <= 0 || winH <= 0 || fbW <= 0 || fbH <= 0 {
			continue
		}

		if x, y, ok := input.Tap(window); ok {
			session.Tap(x, y)
		}

		dl := session.Frame(dt, winW, winH)
		rend.Draw(dl, fbW, fbH)
		window.SwapBuffers()
	}
	l.Infof("window closed")
	return nil
}
