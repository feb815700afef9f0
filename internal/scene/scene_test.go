package scene

import (
	"errors"
	"path/filepath"
	"testing"

	"skyfort/internal/camera"
	"skyfort/internal/config"
	"skyfort/internal/graphics"
	"skyfort/internal/graphics/graphicstest"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeTextures struct {
	next    uint32
	loaded  []string
	cubemap [graphics.CubeFaceCount]string
}

func (f *fakeTextures) Texture(path string) graphics.Texture {
	f.next++
	f.loaded = append(f.loaded, path)
	return graphics.Texture{ID: f.next, Target: graphics.Texture2D}
}

func (f *fakeTextures) Cubemap(faces [graphics.CubeFaceCount]string) graphics.Texture {
	f.next++
	f.cubemap = faces
	return graphics.Texture{ID: f.next, Target: graphics.TextureCubeMap}
}

type shaderLog struct {
	dev      *graphicstest.Device
	pairs    [][2]string
	programs []*graphicstest.Program
	failOn   string
}

func (s *shaderLog) load(vert, frag string) (graphics.Program, error) {
	if vert == s.failOn {
		return nil, errors.New("compile failed")
	}
	s.pairs = append(s.pairs, [2]string{vert, frag})
	p := graphicstest.NewProgram(vert, s.dev)
	s.programs = append(s.programs, p)
	return p, nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Scene.AssetRoot = "assets"
	return cfg
}

func TestBuildScene(t *testing.T) {
	dev := graphicstest.NewDevice()
	tex := &fakeTextures{}
	shaders := &shaderLog{dev: dev}
	cfg := testConfig()

	sc, err := Build(cfg, Deps{Device: dev, Textures: tex, LoadShader: shaders.load, Width: 800, Height: 600})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(shaders.pairs) != 4 {
		t.Fatalf("loaded %d programs, want 4", len(shaders.pairs))
	}
	textured := [2]string{filepath.Join("assets", "shaders/textured.vert"), filepath.Join("assets", "shaders/textured.frag")}
	for i := 0; i < 3; i++ {
		if shaders.pairs[i] != textured {
			t.Errorf("program %d sources = %v, want %v", i, shaders.pairs[i], textured)
		}
	}
	if shaders.pairs[3][0] != filepath.Join("assets", "shaders/skybox.vert") {
		t.Errorf("skybox program sources = %v", shaders.pairs[3])
	}

	wantTextures := []string{
		filepath.Join("assets", "resources/textures/texturepyramid.jpeg"),
		filepath.Join("assets", "resources/textures/sand.jpg"),
		filepath.Join("assets", "resources/textures/wall2.jpg"),
	}
	for i, want := range wantTextures {
		if tex.loaded[i] != want {
			t.Errorf("texture %d = %s, want %s", i, tex.loaded[i], want)
		}
	}
	if tex.cubemap[graphics.FacePositiveX] != filepath.Join("assets", "resources/textures/skybox/right.jpg") ||
		tex.cubemap[graphics.FaceNegativeZ] != filepath.Join("assets", "resources/textures/skybox/back.jpg") {
		t.Errorf("unexpected cubemap faces %v", tex.cubemap)
	}

	if dev.Viewport != [2]int{800, 600} {
		t.Errorf("viewport = %v", dev.Viewport)
	}

	dev.Reset()
	sc.Renderer.Render(camera.New(mgl32.Vec3{0, 5, 40}), 0.016)

	wantCounts := []int32{54, 6, 126, 36}
	if len(dev.Draws) != len(wantCounts) {
		t.Fatalf("%d draws, want %d", len(dev.Draws), len(wantCounts))
	}
	for i, d := range dev.Draws {
		if d.Count != wantCounts[i] {
			t.Errorf("draw %d count = %d, want %d", i, d.Count, wantCounts[i])
		}
	}
	if last := dev.Draws[3]; last.Target != graphics.TextureCubeMap || last.DepthFunc != graphics.DepthLessEqual {
		t.Errorf("last draw is not the skybox: %+v", last)
	}
	if dev.Depth != graphics.DepthLess {
		t.Errorf("depth func left at %v", dev.Depth)
	}

	sc.Renderer.Dispose()
	sc.Meshes.Dispose()
	if len(dev.LiveVAOs) != 0 {
		t.Errorf("leaked vertex arrays %v", dev.LiveVAOs)
	}
	for _, p := range shaders.programs {
		if !p.Deleted {
			t.Errorf("program %s not deleted", p.Name)
		}
	}
}

func TestBuildReleasesOnShaderFailure(t *testing.T) {
	dev := graphicstest.NewDevice()
	shaders := &shaderLog{dev: dev, failOn: filepath.Join("assets", "shaders/skybox.vert")}

	_, err := Build(testConfig(), Deps{Device: dev, Textures: &fakeTextures{}, LoadShader: shaders.load, Width: 800, Height: 600})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(dev.LiveVAOs) != 0 || len(dev.LiveBuffers) != 0 {
		t.Errorf("leaked buffers after failure: vaos %v buffers %v", dev.LiveVAOs, dev.LiveBuffers)
	}
	for _, p := range shaders.programs {
		if !p.Deleted {
			t.Errorf("program %s not deleted after failure", p.Name)
		}
	}
}

func TestObjectsOrderAndSamplers(t *testing.T) {
	objs := Objects(config.Default().Scene)
	want := []struct {
		name, sampler string
		count         int32
	}{
		{"pyramid", "texture1", 162},
		{"ground", "texture2", 36},
		{"fort", "texture3", 180},
	}
	if len(objs) != len(want) {
		t.Fatalf("%d objects, want %d", len(objs), len(want))
	}
	for i, w := range want {
		if objs[i].Name != w.name || objs[i].Sampler != w.sampler || objs[i].DrawCount != w.count {
			t.Errorf("object %d = %+v, want %+v", i, objs[i], w)
		}
	}
}
