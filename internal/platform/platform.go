// Package platform abstracts the window, GL context and event source.
package platform

import "skyfort/internal/input"

// Config describes the window to open.
type Config struct {
	Title         string
	Width         int
	Height        int
	VSync         bool
	CaptureCursor bool
}

// Handlers receive events during PollEvents. Nil handlers are skipped.
type Handlers struct {
	CursorMoved func(x, y float64)
	Scrolled    func(yOffset float64)
	Resized     func(width, height int)
	FocusGained func()
}

// Window is an open window with a current GL context.
type Window interface {
	input.KeyState

	ShouldClose() bool
	SetShouldClose(v bool)
	// Time returns monotonic seconds since the platform started.
	Time() float64
	SwapBuffers()
	PollEvents()
	FramebufferSize() (width, height int)
	SetHandlers(h Handlers)
	Destroy()
}
