// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"path/filepath"
)

// Config holds all application settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display and platform settings.
type WindowConfig struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	VSync         bool   `yaml:"vsync"`
	FPSLimit      int    `yaml:"fps_limit"` // only applied when vsync is off; 0 = unlimited
	Backend       string `yaml:"backend"`   // "glfw" or "sdl"
	CaptureCursor bool   `yaml:"capture_cursor"`
}

// CameraConfig holds the initial camera pose and control constants.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Zoom        float32    `yaml:"zoom"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

// SceneConfig holds asset locations. Relative paths resolve against AssetRoot.
type SceneConfig struct {
	AssetRoot        string     `yaml:"asset_root"`
	TexturedVertex   string     `yaml:"textured_vertex"`
	TexturedFragment string     `yaml:"textured_fragment"`
	SkyboxVertex     string     `yaml:"skybox_vertex"`
	SkyboxFragment   string     `yaml:"skybox_fragment"`
	PyramidTexture   string     `yaml:"pyramid_texture"`
	GroundTexture    string     `yaml:"ground_texture"`
	FortTexture      string     `yaml:"fort_texture"`
	SkyboxFaces      [6]string  `yaml:"skybox_faces"` // right, left, top, bottom, front, back
	ClearColor       [4]float32 `yaml:"clear_color"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the fixed scene's values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:         "skyfort",
			Width:         800,
			Height:        600,
			VSync:         true,
			FPSLimit:      0,
			Backend:       BackendGLFW,
			CaptureCursor: true,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 5, 40},
			Yaw:         -90,
			Pitch:       0,
			Speed:       2.5,
			Sensitivity: 0.1,
			Zoom:        45,
			Near:        0.1,
			Far:         100,
		},
		Scene: SceneConfig{
			AssetRoot:        "assets",
			TexturedVertex:   "shaders/textured.vert",
			TexturedFragment: "shaders/textured.frag",
			SkyboxVertex:     "shaders/skybox.vert",
			SkyboxFragment:   "shaders/skybox.frag",
			PyramidTexture:   "resources/textures/texturepyramid.jpeg",
			GroundTexture:    "resources/textures/sand.jpg",
			FortTexture:      "resources/textures/wall2.jpg",
			SkyboxFaces: [6]string{
				"resources/textures/skybox/right.jpg",
				"resources/textures/skybox/left.jpg",
				"resources/textures/skybox/top.jpg",
				"resources/textures/skybox/bottom.jpg",
				"resources/textures/skybox/front.jpg",
				"resources/textures/skybox/back.jpg",
			},
			ClearColor: [4]float32{0.1, 0.1, 0.1, 1.0},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Platform backends.
const (
	BackendGLFW = "glfw"
	BackendSDL  = "sdl"
)

// Validate reports the first setting that cannot drive the renderer.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPSLimit < 0 {
		return fmt.Errorf("fps_limit must not be negative, got %d", c.Window.FPSLimit)
	}
	switch c.Window.Backend {
	case BackendGLFW, BackendSDL:
	default:
		return fmt.Errorf("unknown window backend %q", c.Window.Backend)
	}
	if c.Camera.Speed < 0 {
		return fmt.Errorf("camera speed must not be negative, got %v", c.Camera.Speed)
	}
	if c.Camera.Sensitivity <= 0 {
		return fmt.Errorf("camera sensitivity must be positive, got %v", c.Camera.Sensitivity)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("invalid clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	for i, face := range c.Scene.SkyboxFaces {
		if face == "" {
			return fmt.Errorf("skybox face %d has no path", i)
		}
	}
	return nil
}

// Resolve returns path joined onto the asset root unless it is absolute.
func (s SceneConfig) Resolve(path string) string {
	if filepath.IsAbs(path) || s.AssetRoot == "" {
		return path
	}
	return filepath.Join(s.AssetRoot, path)
}
