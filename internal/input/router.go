// Package input routes platform key, cursor and scroll input to camera commands.
package input

import (
	"skyfort/internal/camera"
)

// Key is a platform-independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeyCount // Sentinel value for array sizing
)

// Keys lists every key a platform must report state for.
var Keys = []Key{KeyEscape, KeyW, KeyA, KeyS, KeyD}

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	default:
		return "Unknown"
	}
}

// Action represents a logical command, not a physical key.
type Action int

const (
	ActionNone Action = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
)

// KeyState reports whether a key is currently held down.
type KeyState interface {
	KeyPressed(k Key) bool
}

// CameraController is the set of commands the router issues.
type CameraController interface {
	ProcessMovement(dir camera.Direction, dt float32)
	ProcessLook(xOffset, yOffset float32, constrainPitch bool)
	ProcessZoom(yOffset float32)
}

// Router translates raw input into camera commands. It is driven from the
// render thread only.
type Router struct {
	camera   CameraController
	bindings [KeyCount]Action

	lastX, lastY float64
	firstMouse   bool
}

// NewRouter creates a router with the default WASD + Escape bindings.
func NewRouter(c CameraController) *Router {
	r := &Router{
		camera:     c,
		firstMouse: true,
	}

	r.BindKey(KeyW, ActionMoveForward)
	r.BindKey(KeyS, ActionMoveBackward)
	r.BindKey(KeyA, ActionMoveLeft)
	r.BindKey(KeyD, ActionMoveRight)
	r.BindKey(KeyEscape, ActionQuit)

	return r
}

// BindKey binds a key to an action, replacing any previous binding.
func (r *Router) BindKey(key Key, action Action) {
	if key <= KeyUnknown || key >= KeyCount {
		return
	}
	r.bindings[key] = action
}

// UnbindKey removes the binding for a key.
func (r *Router) UnbindKey(key Key) {
	r.BindKey(key, ActionNone)
}

// Binding returns the action bound to key.
func (r *Router) Binding(key Key) Action {
	if key <= KeyUnknown || key >= KeyCount {
		return ActionNone
	}
	return r.bindings[key]
}

// Poll samples the bound keys once for this frame and issues one movement
// command per held movement key, scaled by dt. Simultaneous keys add up.
// It reports whether a quit key is held.
func (r *Router) Poll(keys KeyState, dt float64) (quit bool) {
	for _, key := range Keys {
		action := r.bindings[key]
		if action == ActionNone || !keys.KeyPressed(key) {
			continue
		}

		switch action {
		case ActionQuit:
			quit = true
		case ActionMoveForward:
			r.camera.ProcessMovement(camera.Forward, float32(dt))
		case ActionMoveBackward:
			r.camera.ProcessMovement(camera.Backward, float32(dt))
		case ActionMoveLeft:
			r.camera.ProcessMovement(camera.Left, float32(dt))
		case ActionMoveRight:
			r.camera.ProcessMovement(camera.Right, float32(dt))
		}
	}
	return quit
}

// HandleCursor consumes an absolute cursor position in window pixels.
// The first sample after construction or ResetCursor only seeds the
// reference position.
func (r *Router) HandleCursor(xpos, ypos float64) {
	if r.firstMouse {
		r.lastX = xpos
		r.lastY = ypos
		r.firstMouse = false
		return
	}

	xoffset := xpos - r.lastX
	yoffset := r.lastY - ypos // window Y grows downward
	r.lastX = xpos
	r.lastY = ypos

	r.camera.ProcessLook(float32(xoffset), float32(yoffset), true)
}

// HandleScroll forwards the vertical wheel offset to the camera zoom.
func (r *Router) HandleScroll(yoffset float64) {
	r.camera.ProcessZoom(float32(yoffset))
}

// ResetCursor re-arms first-sample suppression. The app calls it when the
// window regains focus so the jump to the new cursor position is ignored.
func (r *Router) ResetCursor() {
	r.firstMouse = true
}
