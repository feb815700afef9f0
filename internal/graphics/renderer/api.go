package renderer

import (
	"skyfort/internal/geometry"
	"skyfort/internal/graphics"
	"skyfort/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Device     graphics.Device
	Meshes     Meshes
	Profile    *profiling.Frame
	DT         float64 // frame delta in seconds; the static scene ignores it
	View       mgl32.Mat4
	SkyboxView mgl32.Mat4
	Proj       mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

// Meshes binds uploaded meshes for drawing.
type Meshes interface {
	Bind(h geometry.MeshHandle) error
	Unbind()
	VertexCount(h geometry.MeshHandle) (int, error)
}

// Viewer supplies the per-frame camera matrices.
type Viewer interface {
	ViewMatrix() mgl32.Mat4
	SkyboxView() mgl32.Mat4
	FieldOfView() float32
}
