// Package scene assembles the fixed scene: pyramids, ground, fort wall and
// skybox.
package scene

import (
	"fmt"

	"skyfort/internal/config"
	"skyfort/internal/geometry"
	"skyfort/internal/graphics"
	"skyfort/internal/graphics/renderables/skybox"
	"skyfort/internal/graphics/renderables/textured"
	renderer "skyfort/internal/graphics/renderer"
	"skyfort/internal/logger"
	"skyfort/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Textures provides cached GPU textures.
type Textures interface {
	Texture(path string) graphics.Texture
	Cubemap(faces [graphics.CubeFaceCount]string) graphics.Texture
}

// ShaderLoader compiles and links a program from two source files.
type ShaderLoader func(vertexPath, fragmentPath string) (graphics.Program, error)

// Object is one textured drawable of the scene.
type Object struct {
	Name      string
	Mesh      string
	Texture   string
	Sampler   string
	DrawCount int32
}

// SkyboxDrawCount is the vertex count drawn for the sky cube.
const SkyboxDrawCount = 36

// Objects returns the textured drawables in draw order.
func Objects(cfg config.SceneConfig) []Object {
	return []Object{
		{Name: "pyramid", Mesh: geometry.MeshPyramid, Texture: cfg.PyramidTexture, Sampler: "texture1", DrawCount: 162},
		{Name: "ground", Mesh: geometry.MeshGround, Texture: cfg.GroundTexture, Sampler: "texture2", DrawCount: 36},
		{Name: "fort", Mesh: geometry.MeshFort, Texture: cfg.FortTexture, Sampler: "texture3", DrawCount: 180},
	}
}

// Deps are the GPU services the scene is built on.
type Deps struct {
	Device     graphics.Device
	Textures   Textures
	LoadShader ShaderLoader
	Profile    *profiling.Frame
	Width      int
	Height     int
}

// Scene holds what Build created.
type Scene struct {
	Renderer   *renderer.Renderer
	Meshes     *geometry.Store
	Projection *graphics.Projection
}

// Build uploads every mesh, loads textures and programs and creates the
// renderer. On error everything created so far is released.
func Build(cfg *config.Config, deps Deps) (sc *Scene, err error) {
	log := logger.Named("scene")
	store := geometry.NewStore(deps.Device)

	var programs []graphics.Program
	defer func() {
		if err != nil {
			for _, p := range programs {
				p.Delete()
			}
			store.Dispose()
		}
	}()

	loadProgram := func(vert, frag string) (graphics.Program, error) {
		p, err := deps.LoadShader(cfg.Scene.Resolve(vert), cfg.Scene.Resolve(frag))
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
		return p, nil
	}

	upload := func(name string) (geometry.MeshHandle, error) {
		data, err := geometry.LoadMesh(name)
		if err != nil {
			return 0, err
		}
		h, err := store.UploadMesh(data.Vertices, data.Layout)
		if err != nil {
			return 0, fmt.Errorf("upload mesh %s: %w", name, err)
		}
		log.Debug("mesh uploaded", zap.String("mesh", name), zap.Int("vertices", data.VertexCount()))
		return h, nil
	}

	var objects []renderer.Renderable
	for _, o := range Objects(cfg.Scene) {
		h, err := upload(o.Mesh)
		if err != nil {
			return nil, err
		}
		prog, err := loadProgram(cfg.Scene.TexturedVertex, cfg.Scene.TexturedFragment)
		if err != nil {
			return nil, fmt.Errorf("%s shader: %w", o.Name, err)
		}
		tex := deps.Textures.Texture(cfg.Scene.Resolve(o.Texture))
		objects = append(objects, textured.NewObject(o.Name, prog, store, h, tex, o.Sampler, o.DrawCount))
	}

	skyMesh, err := upload(geometry.MeshSkybox)
	if err != nil {
		return nil, err
	}
	skyProg, err := loadProgram(cfg.Scene.SkyboxVertex, cfg.Scene.SkyboxFragment)
	if err != nil {
		return nil, fmt.Errorf("skybox shader: %w", err)
	}
	var faces [graphics.CubeFaceCount]string
	for i, f := range cfg.Scene.SkyboxFaces {
		faces[i] = cfg.Scene.Resolve(f)
	}
	sky := skybox.NewSkybox(skyProg, store, skyMesh, deps.Textures.Cubemap(faces), SkyboxDrawCount)

	projection := graphics.NewProjection(deps.Width, deps.Height, cfg.Camera.Near, cfg.Camera.Far)
	r, err := renderer.NewRenderer(renderer.Options{
		Device:     deps.Device,
		Meshes:     store,
		Projection: projection,
		ClearColor: mgl32.Vec4(cfg.Scene.ClearColor),
		Profile:    deps.Profile,
	}, sky, objects...)
	if err != nil {
		return nil, err
	}
	deps.Device.SetViewport(deps.Width, deps.Height)

	log.Info("scene ready", zap.Int("objects", len(objects)+1))
	return &Scene{Renderer: r, Meshes: store, Projection: projection}, nil
}
