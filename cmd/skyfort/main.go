package main

import (
	"fmt"
	"os"
	"runtime"

	"skyfort/internal/app"
	"skyfort/internal/config"
	"skyfort/internal/graphics/opengl"
	"skyfort/internal/logger"
	"skyfort/internal/profiling"
	"skyfort/internal/scene"

	"go.uber.org/zap"
)

func init() {
	// GL and the window system must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	if err := run(); err != nil {
		logger.Error("fatal", zap.Error(err))
		logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Sync()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			return err
		}
		fmt.Println("wrote config to", path)
		return nil
	}
	if config.SaveConfigRequested() {
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println("wrote config to", config.UserConfigPath())
		return nil
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.Info("starting skyfort",
		zap.String("backend", cfg.Window.Backend),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	win, err := openWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	device, err := opengl.NewDevice()
	if err != nil {
		return err
	}

	textures := opengl.NewTextureService()
	profile := profiling.NewFrame()
	width, height := win.FramebufferSize()

	sc, err := scene.Build(cfg, scene.Deps{
		Device:     device,
		Textures:   textures,
		LoadShader: loadShader,
		Profile:    profile,
		Width:      width,
		Height:     height,
	})
	if err != nil {
		textures.Dispose()
		return fmt.Errorf("build scene: %w", err)
	}

	fpsLimit := cfg.Window.FPSLimit
	if cfg.Window.VSync {
		fpsLimit = 0
	}

	loop := app.New(win, newCamera(cfg.Camera), sc.Renderer, app.Options{
		FPSLimit:  fpsLimit,
		Profile:   profile,
		Resources: []app.Disposer{textures, sc.Meshes},
	})
	loop.Run()

	logger.Info("exited cleanly", zap.Uint64("frames", loop.Frames()))
	return nil
}
