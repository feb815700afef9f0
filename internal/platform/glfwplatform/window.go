// Package glfwplatform opens the window with GLFW.
package glfwplatform

import (
	"fmt"

	"skyfort/internal/input"
	"skyfort/internal/logger"
	"skyfort/internal/platform"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

var keyMap = map[input.Key]glfw.Key{
	input.KeyEscape: glfw.KeyEscape,
	input.KeyW:      glfw.KeyW,
	input.KeyA:      glfw.KeyA,
	input.KeyS:      glfw.KeyS,
	input.KeyD:      glfw.KeyD,
}

// Window is a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	win      *glfw.Window
	handlers platform.Handlers
}

var _ platform.Window = (*Window)(nil)

// New initializes GLFW and opens the window. The caller's goroutine must be
// locked to the main OS thread.
func New(cfg platform.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if cfg.CaptureCursor {
		win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}

	w := &Window{win: win}
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if w.handlers.CursorMoved != nil {
			w.handlers.CursorMoved(xpos, ypos)
		}
	})
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		if w.handlers.Scrolled != nil {
			w.handlers.Scrolled(yoff)
		}
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused && w.handlers.FocusGained != nil {
			w.handlers.FocusGained()
		}
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if w.handlers.Resized != nil {
			w.handlers.Resized(width, height)
		}
	})

	logger.Info("window created",
		zap.String("backend", "glfw"),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *Window) KeyPressed(k input.Key) bool {
	gk, ok := keyMap[k]
	return ok && w.win.GetKey(gk) == glfw.Press
}

func (w *Window) ShouldClose() bool     { return w.win.ShouldClose() }
func (w *Window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }
func (w *Window) Time() float64         { return glfw.GetTime() }
func (w *Window) SwapBuffers()          { w.win.SwapBuffers() }
func (w *Window) PollEvents()           { glfw.PollEvents() }

func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) SetHandlers(h platform.Handlers) {
	w.handlers = h
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
