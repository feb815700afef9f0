package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection holds the viewport and clip planes of the perspective projection.
// The field of view comes from the camera each frame.
type Projection struct {
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewProjection(width, height int, near, far float32) *Projection {
	p := &Projection{
		NearPlane: near,
		FarPlane:  far,
	}
	p.SetViewport(width, height)
	return p
}

// SetViewport updates the aspect ratio. Degenerate sizes (a minimized
// window reports 0x0) keep the previous ratio.
func (p *Projection) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		if p.AspectRatio == 0 {
			p.AspectRatio = 1
		}
		return
	}
	p.AspectRatio = float32(width) / float32(height)
}

// Matrix returns the perspective matrix for a vertical field of view in radians.
func (p *Projection) Matrix(fovY float32) mgl32.Mat4 {
	return mgl32.Perspective(fovY, p.AspectRatio, p.NearPlane, p.FarPlane)
}
