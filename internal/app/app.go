// Package app owns the per-frame loop and the state it mutates.
package app

import (
	"time"

	"skyfort/internal/camera"
	"skyfort/internal/graphics/renderer"
	"skyfort/internal/input"
	"skyfort/internal/logger"
	"skyfort/internal/platform"
	"skyfort/internal/profiling"

	"go.uber.org/zap"
)

// State is the loop state.
type State int

const (
	StateRunning State = iota
	StateShuttingDown
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting-down"
	default:
		return "unknown"
	}
}

// DefaultSlowFrame is two 60 Hz vsync intervals.
const DefaultSlowFrame = 33 * time.Millisecond

// Renderer draws one frame for the camera.
type Renderer interface {
	Render(v renderer.Viewer, dt float64)
	SetViewport(width, height int)
	Dispose()
}

// Disposer releases GPU resources at shutdown.
type Disposer interface {
	Dispose()
}

// Options tunes the loop.
type Options struct {
	FPSLimit  int
	SlowFrame time.Duration
	// Profile collects section timings; nil creates a new one.
	Profile *profiling.Frame
	// Resources are disposed in reverse order after the renderer.
	Resources []Disposer
}

// Context is everything the frame loop reads and writes. It is only
// touched from the render thread.
type Context struct {
	Window   platform.Window
	Camera   *camera.Camera
	Router   *input.Router
	Renderer Renderer
	Timing   FrameTiming
	Profile  *profiling.Frame

	state     State
	limiter   *FPSLimiter
	slowFrame time.Duration
	resources []Disposer
	frames    uint64
	log       *zap.Logger
	now       func() time.Time
}

// New wires the window's event handlers to the router and renderer.
func New(win platform.Window, cam *camera.Camera, r Renderer, opts Options) *Context {
	if opts.SlowFrame <= 0 {
		opts.SlowFrame = DefaultSlowFrame
	}
	if opts.Profile == nil {
		opts.Profile = profiling.NewFrame()
	}

	c := &Context{
		Window:    win,
		Camera:    cam,
		Router:    input.NewRouter(cam),
		Renderer:  r,
		Profile:   opts.Profile,
		state:     StateRunning,
		limiter:   NewFPSLimiter(opts.FPSLimit),
		slowFrame: opts.SlowFrame,
		resources: opts.Resources,
		log:       logger.Named("app"),
		now:       time.Now,
	}

	win.SetHandlers(platform.Handlers{
		CursorMoved: c.Router.HandleCursor,
		Scrolled:    c.Router.HandleScroll,
		FocusGained: c.Router.ResetCursor,
		Resized: func(width, height int) {
			c.log.Debug("framebuffer resized", zap.Int("width", width), zap.Int("height", height))
			c.Renderer.SetViewport(width, height)
		},
	})

	return c
}

// State returns the current loop state.
func (c *Context) State() State {
	return c.state
}

// Frames returns the number of completed frames.
func (c *Context) Frames() uint64 {
	return c.frames
}

// Run renders frames until the window is asked to close, then releases
// every resource. A started frame always completes.
func (c *Context) Run() {
	c.log.Info("entering frame loop", zap.Int("fps_limit", c.limiter.Limit()))
	c.Timing.Start(c.Window.Time())

	for c.state == StateRunning {
		c.tick()
		if c.Window.ShouldClose() {
			c.shutdown()
		}
	}
}

func (c *Context) tick() {
	c.Profile.Reset()
	start := c.now()

	dt := c.Timing.Advance(c.Window.Time())

	func() {
		defer c.Profile.Track("input.Poll")()
		if c.Router.Poll(c.Window, dt) {
			c.Window.SetShouldClose(true)
		}
	}()

	c.Renderer.Render(c.Camera, dt)

	func() { defer c.Profile.Track("platform.SwapBuffers")(); c.Window.SwapBuffers() }()
	func() { defer c.Profile.Track("platform.PollEvents")(); c.Window.PollEvents() }()

	c.frames++

	if d := c.now().Sub(start); d > c.slowFrame {
		c.log.Warn("slow frame",
			zap.Duration("duration", d),
			zap.Uint64("frame", c.frames),
			zap.String("top", c.Profile.TopN(5)),
		)
	}

	c.limiter.Wait()
}

func (c *Context) shutdown() {
	c.state = StateShuttingDown
	c.log.Info("shutting down", zap.Uint64("frames", c.frames))

	c.Renderer.Dispose()
	for i := len(c.resources) - 1; i >= 0; i-- {
		c.resources[i].Dispose()
	}
}
