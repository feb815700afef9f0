// Package sdlplatform opens the window with SDL2.
package sdlplatform

import (
	"fmt"

	"skyfort/internal/input"
	"skyfort/internal/logger"
	"skyfort/internal/platform"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
)

var scancodes = map[input.Key]sdl.Scancode{
	input.KeyEscape: sdl.SCANCODE_ESCAPE,
	input.KeyW:      sdl.SCANCODE_W,
	input.KeyA:      sdl.SCANCODE_A,
	input.KeyS:      sdl.SCANCODE_S,
	input.KeyD:      sdl.SCANCODE_D,
}

// Window wraps an SDL2 window and its OpenGL context.
type Window struct {
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	handlers  platform.Handlers

	shouldClose bool
	freq        float64
	start       uint64

	// In relative mouse mode SDL reports motion deltas; they are summed
	// into a virtual cursor so handlers see absolute positions.
	relative bool
	cursorX  float64
	cursorY  float64
}

var _ platform.Window = (*Window)(nil)

// New initializes SDL2 and creates a window with an OpenGL 4.1 core context.
func New(cfg platform.Config) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	win, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	w := &Window{
		sdlWindow: win,
		glContext: ctx,
		freq:      float64(sdl.GetPerformanceFrequency()),
		start:     sdl.GetPerformanceCounter(),
	}
	if cfg.CaptureCursor {
		if rc := sdl.SetRelativeMouseMode(true); rc < 0 {
			logger.Warn("relative mouse mode unavailable", zap.Error(sdl.GetError()))
		} else {
			w.relative = true
		}
	}

	logger.Info("window created",
		zap.String("backend", "sdl"),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *Window) KeyPressed(k input.Key) bool {
	sc, ok := scancodes[k]
	if !ok {
		return false
	}
	state := sdl.GetKeyboardState()
	return int(sc) < len(state) && state[sc] != 0
}

func (w *Window) ShouldClose() bool     { return w.shouldClose }
func (w *Window) SetShouldClose(v bool) { w.shouldClose = v }

func (w *Window) Time() float64 {
	return float64(sdl.GetPerformanceCounter()-w.start) / w.freq
}

// SwapBuffers swaps the OpenGL buffers.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// PollEvents drains the SDL queue and dispatches to the handlers.
func (w *Window) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.shouldClose = true

		case *sdl.WindowEvent:
			switch {
			case e.Event == sdl.WINDOWEVENT_SIZE_CHANGED && w.handlers.Resized != nil:
				w.handlers.Resized(w.FramebufferSize())
			case e.Event == sdl.WINDOWEVENT_FOCUS_GAINED && w.handlers.FocusGained != nil:
				w.handlers.FocusGained()
			}

		case *sdl.MouseMotionEvent:
			if w.relative {
				w.cursorX += float64(e.XRel)
				w.cursorY += float64(e.YRel)
			} else {
				w.cursorX, w.cursorY = float64(e.X), float64(e.Y)
			}
			if w.handlers.CursorMoved != nil {
				w.handlers.CursorMoved(w.cursorX, w.cursorY)
			}

		case *sdl.MouseWheelEvent:
			if w.handlers.Scrolled != nil {
				y := float64(e.Y)
				if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
					y = -y
				}
				w.handlers.Scrolled(y)
			}
		}
	}
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *Window) SetHandlers(h platform.Handlers) {
	w.handlers = h
}

// Destroy deletes the context and window and shuts SDL down.
func (w *Window) Destroy() {
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}
