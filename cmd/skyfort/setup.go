package main

import (
	"fmt"

	"skyfort/internal/camera"
	"skyfort/internal/config"
	"skyfort/internal/graphics"
	"skyfort/internal/graphics/opengl"
	"skyfort/internal/platform"
	"skyfort/internal/platform/glfwplatform"
	"skyfort/internal/platform/sdlplatform"

	"github.com/go-gl/mathgl/mgl32"
)

func openWindow(cfg *config.Config) (platform.Window, error) {
	pc := platform.Config{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		VSync:         cfg.Window.VSync,
		CaptureCursor: cfg.Window.CaptureCursor,
	}

	switch cfg.Window.Backend {
	case config.BackendSDL:
		w, err := sdlplatform.New(pc)
		if err != nil {
			return nil, err
		}
		return w, nil
	case config.BackendGLFW:
		w, err := glfwplatform.New(pc)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Window.Backend)
	}
}

func loadShader(vertexPath, fragmentPath string) (graphics.Program, error) {
	s, err := opengl.NewShader(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newCamera(cc config.CameraConfig) *camera.Camera {
	return camera.New(
		mgl32.Vec3(cc.Position),
		camera.WithOrientation(cc.Yaw, cc.Pitch),
		camera.WithSpeed(cc.Speed),
		camera.WithSensitivity(cc.Sensitivity),
		camera.WithZoom(cc.Zoom),
	)
}
