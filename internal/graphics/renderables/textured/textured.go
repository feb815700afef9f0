package textured

import (
	"skyfort/internal/geometry"
	"skyfort/internal/graphics"
	renderer "skyfort/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// TextureUnit is the unit every scene sampler reads from.
const TextureUnit = 0

// Object draws one textured mesh with its own program.
type Object struct {
	Name      string
	Program   graphics.Program
	Mesh      geometry.MeshHandle
	Texture   graphics.Texture
	Sampler   string
	Model     mgl32.Mat4
	DrawCount int32 // declared; clamped to the uploaded vertex count at Init

	meshes renderer.Meshes
	count  int32
}

// NewObject creates a textured object drawn with an identity model matrix.
func NewObject(name string, program graphics.Program, meshes renderer.Meshes, mesh geometry.MeshHandle, tex graphics.Texture, sampler string, drawCount int32) *Object {
	return &Object{
		Name:      name,
		Program:   program,
		Mesh:      mesh,
		Texture:   tex,
		Sampler:   sampler,
		Model:     mgl32.Ident4(),
		DrawCount: drawCount,
		meshes:    meshes,
	}
}

// Init points the sampler at the texture unit and resolves the draw count.
func (o *Object) Init() error {
	count, err := renderer.DrawCount(o.meshes, o.Mesh, o.DrawCount, o.Name)
	if err != nil {
		return err
	}
	o.count = count

	o.Program.Use()
	o.Program.SetInt(o.Sampler, TextureUnit)
	return nil
}

// Render draws the mesh with the frame's view and projection.
func (o *Object) Render(ctx renderer.RenderContext) {
	defer ctx.Profile.Track("renderer." + o.Name)()

	o.Program.Use()
	o.Program.SetMat4("model", o.Model)
	o.Program.SetMat4("view", ctx.View)
	o.Program.SetMat4("projection", ctx.Proj)

	if err := ctx.Meshes.Bind(o.Mesh); err != nil {
		return
	}
	ctx.Device.BindTexture(TextureUnit, graphics.Texture2D, o.Texture.ID)
	ctx.Device.DrawTriangles(0, o.count)
	ctx.Meshes.Unbind()
}

// Dispose deletes the object's program.
func (o *Object) Dispose() {
	o.Program.Delete()
}

func (o *Object) SetViewport(width, height int) {}
