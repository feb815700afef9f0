// Package graphics defines the GPU-facing surface used by the scene: the
// draw/state device, shader programs, textures and projection.
package graphics

import "github.com/go-gl/mathgl/mgl32"

// DepthFunc selects the depth comparison used by the depth test.
type DepthFunc int

const (
	// DepthLess passes when the incoming depth is less than the stored depth.
	DepthLess DepthFunc = iota
	// DepthLessEqual passes when the incoming depth is less than or equal.
	DepthLessEqual
)

func (f DepthFunc) String() string {
	switch f {
	case DepthLess:
		return "LESS"
	case DepthLessEqual:
		return "LEQUAL"
	default:
		return "UNKNOWN"
	}
}

// Device issues the GL state changes and draws the renderer and geometry
// store need. Only the render thread may call it.
type Device interface {
	EnableDepthTest()
	SetViewport(width, height int)
	ClearFrame(color mgl32.Vec4)
	DepthFunc(fn DepthFunc)

	GenVertexArray() uint32
	GenBuffer() uint32
	// UploadVertices binds vao and vbo and fills vbo with static data.
	UploadVertices(vao, vbo uint32, data []float32)
	// VertexAttrib enables a float attribute on the bound vertex array.
	// stride and offset are in bytes.
	VertexAttrib(location, size, stride, offset int)
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	DeleteBuffer(vbo uint32)

	BindTexture(unit int, target TextureTarget, id uint32)
	DrawTriangles(first, count int32)
}

// Program is a linked shader program.
type Program interface {
	Use()
	SetInt(name string, value int32)
	SetMat4(name string, value mgl32.Mat4)
	Delete()
}
