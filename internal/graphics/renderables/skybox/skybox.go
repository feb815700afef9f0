package skybox

import (
	"skyfort/internal/geometry"
	"skyfort/internal/graphics"
	renderer "skyfort/internal/graphics/renderer"
)

// Sampler is the cubemap uniform name in the skybox shader.
const Sampler = "skybox"

// Skybox draws the cubemap around the camera at maximum depth. It must be
// the last draw of a frame.
type Skybox struct {
	Program   graphics.Program
	Mesh      geometry.MeshHandle
	Cubemap   graphics.Texture
	DrawCount int32

	meshes renderer.Meshes
	count  int32
}

// NewSkybox creates the skybox renderable.
func NewSkybox(program graphics.Program, meshes renderer.Meshes, mesh geometry.MeshHandle, cubemap graphics.Texture, drawCount int32) *Skybox {
	return &Skybox{
		Program:   program,
		Mesh:      mesh,
		Cubemap:   cubemap,
		DrawCount: drawCount,
		meshes:    meshes,
	}
}

func (s *Skybox) Init() error {
	count, err := renderer.DrawCount(s.meshes, s.Mesh, s.DrawCount, "skybox")
	if err != nil {
		return err
	}
	s.count = count

	s.Program.Use()
	s.Program.SetInt(Sampler, 0)
	return nil
}

// Render draws with LEQUAL so the far-plane cube passes against the cleared
// depth, and always puts LESS back.
func (s *Skybox) Render(ctx renderer.RenderContext) {
	defer ctx.Profile.Track("renderer.skybox")()

	ctx.Device.DepthFunc(graphics.DepthLessEqual)
	defer ctx.Device.DepthFunc(graphics.DepthLess)

	s.Program.Use()
	s.Program.SetMat4("view", ctx.SkyboxView)
	s.Program.SetMat4("projection", ctx.Proj)

	if err := ctx.Meshes.Bind(s.Mesh); err != nil {
		return
	}
	ctx.Device.BindTexture(0, graphics.TextureCubeMap, s.Cubemap.ID)
	ctx.Device.DrawTriangles(0, s.count)
	ctx.Meshes.Unbind()
}

func (s *Skybox) Dispose() {
	s.Program.Delete()
}

func (s *Skybox) SetViewport(width, height int) {}
