// Package camera implements the first-person free-look camera.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a horizontal movement command.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0

	MaxPitch = 89.0
	MinZoom  = 1.0
	MaxZoom  = 45.0
)

// Camera is a yaw/pitch camera. Front, Right and Up are always re-derived from
// Yaw and Pitch and form an orthonormal basis.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
}

// Option adjusts a camera during construction.
type Option func(*Camera)

// WithOrientation sets the initial yaw and pitch in degrees.
func WithOrientation(yaw, pitch float32) Option {
	return func(c *Camera) {
		c.Yaw = yaw
		c.Pitch = clampPitch(pitch)
	}
}

// WithSpeed sets the movement speed in world units per second.
func WithSpeed(speed float32) Option {
	return func(c *Camera) { c.MovementSpeed = speed }
}

// WithSensitivity sets the look sensitivity in degrees per cursor pixel.
func WithSensitivity(s float32) Option {
	return func(c *Camera) { c.MouseSensitivity = s }
}

// WithZoom sets the initial field of view in degrees.
func WithZoom(zoom float32) Option {
	return func(c *Camera) { c.Zoom = clampZoom(zoom) }
}

// New creates a camera at position with world up +Y and default constants.
func New(position mgl32.Vec3, opts ...Option) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.updateVectors()
	return c
}

// ProcessMovement moves the camera on the horizontal plane. Forward and
// backward follow the front vector with its vertical component removed.
func (c *Camera) ProcessMovement(dir Direction, dt float32) {
	velocity := c.MovementSpeed * dt
	if velocity == 0 {
		return
	}

	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.horizontalFront().Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.horizontalFront().Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// ProcessLook applies cursor offsets to yaw and pitch.
func (c *Camera) ProcessLook(xOffset, yOffset float32, constrainPitch bool) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity

	if constrainPitch {
		c.Pitch = clampPitch(c.Pitch)
	}

	c.updateVectors()
}

// ProcessZoom narrows the field of view as the wheel scrolls up.
func (c *Camera) ProcessZoom(yOffset float32) {
	c.Zoom = clampZoom(c.Zoom - yOffset)
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// SkyboxView returns the view matrix with its translation removed, so that
// geometry drawn with it stays centred on the eye.
func (c *Camera) SkyboxView() mgl32.Mat4 {
	return c.ViewMatrix().Mat3().Mat4()
}

// FieldOfView returns the vertical field of view in radians.
func (c *Camera) FieldOfView() float32 {
	return mgl32.DegToRad(c.Zoom)
}

func (c *Camera) horizontalFront() mgl32.Vec3 {
	flat := mgl32.Vec3{c.Front.X(), 0, c.Front.Z()}
	if flat.Len() == 0 {
		return flat
	}
	return flat.Normalize()
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// clampPitch saturates at the boundary, so ±MaxPitch is a valid pitch.
func clampPitch(p float32) float32 {
	return mgl32.Clamp(p, -MaxPitch, MaxPitch)
}

func clampZoom(z float32) float32 {
	return mgl32.Clamp(z, MinZoom, MaxZoom)
}
