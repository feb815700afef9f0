package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Backend != BackendGLFW {
		t.Errorf("expected glfw backend, got %s", cfg.Window.Backend)
	}
	if cfg.Camera.Position != [3]float32{0, 5, 40} {
		t.Errorf("expected camera at (0,5,40), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.Yaw != -90 || cfg.Camera.Pitch != 0 {
		t.Errorf("expected yaw -90 pitch 0, got yaw %v pitch %v", cfg.Camera.Yaw, cfg.Camera.Pitch)
	}
	if cfg.Camera.Zoom != 45 {
		t.Errorf("expected zoom 45, got %v", cfg.Camera.Zoom)
	}
	if cfg.Camera.Near != 0.1 || cfg.Camera.Far != 100 {
		t.Errorf("expected clip planes 0.1/100, got %v/%v", cfg.Camera.Near, cfg.Camera.Far)
	}
	if !strings.HasSuffix(cfg.Scene.SkyboxFaces[0], "right.jpg") || !strings.HasSuffix(cfg.Scene.SkyboxFaces[5], "back.jpg") {
		t.Errorf("unexpected cubemap face order: %v", cfg.Scene.SkyboxFaces)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "skyfort.yaml")

	yamlContent := `
window:
  width: 1280
  height: 720
  vsync: false
  fps_limit: 144
  backend: sdl

camera:
  position: [1, 2, 3]
  speed: 5

logging:
  level: "debug"
  log_file: "skyfort.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Window.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Window.FPSLimit)
	}
	if cfg.Window.Backend != BackendSDL {
		t.Errorf("expected sdl backend, got %s", cfg.Window.Backend)
	}
	if cfg.Camera.Position != [3]float32{1, 2, 3} {
		t.Errorf("expected position (1,2,3), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.Speed != 5 {
		t.Errorf("expected speed 5, got %v", cfg.Camera.Speed)
	}
	// Unset keys keep their defaults
	if cfg.Camera.Zoom != 45 {
		t.Errorf("expected default zoom 45, got %v", cfg.Camera.Zoom)
	}
	if cfg.Window.Title != "skyfort" {
		t.Errorf("expected default title, got %q", cfg.Window.Title)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "skyfort.log" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadFromEmptyPath(t *testing.T) {
	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Window.Width != Default().Window.Width {
		t.Errorf("expected defaults for empty path")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(configPath, []byte("window: [not, a, map"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := LoadFrom(configPath); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative fps", func(c *Config) { c.Window.FPSLimit = -1 }},
		{"unknown backend", func(c *Config) { c.Window.Backend = "vulkan" }},
		{"negative speed", func(c *Config) { c.Camera.Speed = -1 }},
		{"zero sensitivity", func(c *Config) { c.Camera.Sensitivity = 0 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }},
		{"missing face", func(c *Config) { c.Scene.SkyboxFaces[3] = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Window.Width = 1024
	cfg.Scene.AssetRoot = "/opt/skyfort"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Window.Width != 1024 {
		t.Errorf("expected width 1024, got %d", loaded.Window.Width)
	}
	if loaded.Scene.AssetRoot != "/opt/skyfort" {
		t.Errorf("expected asset root to round-trip, got %q", loaded.Scene.AssetRoot)
	}
}

func TestSaveToUserConfigDir(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("config dir is not redirected by XDG_CONFIG_HOME on this OS")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	want := filepath.Join(xdg, "skyfort", "config.yaml")
	if got := UserConfigPath(); got != want {
		t.Fatalf("UserConfigPath = %q, want %q", got, want)
	}

	cfg := Default()
	cfg.Window.Backend = BackendSDL
	if err := cfg.Save(); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat("./skyfort.yaml"); os.IsNotExist(err) {
		if got := findConfigFile(); got != want {
			t.Errorf("findConfigFile = %q, want %q", got, want)
		}
	}

	loaded, err := LoadFrom(want)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Window.Backend != BackendSDL {
		t.Errorf("expected sdl backend after reload, got %s", loaded.Window.Backend)
	}
}

func TestResolve(t *testing.T) {
	s := SceneConfig{AssetRoot: "assets"}
	if got := s.Resolve("shaders/skybox.vert"); got != filepath.Join("assets", "shaders", "skybox.vert") {
		t.Errorf("unexpected resolved path %q", got)
	}
	abs := filepath.Join(string(filepath.Separator), "tmp", "sky.jpg")
	if got := s.Resolve(abs); got != abs {
		t.Errorf("absolute path should be unchanged, got %q", got)
	}
	if got := (SceneConfig{}).Resolve("a.jpg"); got != "a.jpg" {
		t.Errorf("empty root should leave path unchanged, got %q", got)
	}
}
