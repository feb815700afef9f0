package opengl

import (
	"sync"

	"skyfort/internal/graphics"
	"skyfort/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// TextureService loads textures once per path and owns them until Dispose.
// Decode failures are logged and the empty texture is cached like any other.
type TextureService struct {
	mu    sync.RWMutex
	cache map[string]graphics.Texture
	log   *zap.Logger
}

// NewTextureService returns an empty texture cache.
func NewTextureService() *TextureService {
	return &TextureService{
		cache: make(map[string]graphics.Texture),
		log:   logger.Named("textures"),
	}
}

// Texture returns the cached 2D texture for path, loading it on first use.
func (s *TextureService) Texture(path string) graphics.Texture {
	return s.get(path, func() (graphics.Texture, error) { return LoadTexture(path) })
}

// Cubemap returns the cached cubemap for the six face paths.
func (s *TextureService) Cubemap(faces [graphics.CubeFaceCount]string) graphics.Texture {
	key := "cubemap:"
	for _, f := range faces {
		key += f + "|"
	}
	return s.get(key, func() (graphics.Texture, error) { return LoadCubemap(faces) })
}

func (s *TextureService) get(key string, load func() (graphics.Texture, error)) graphics.Texture {
	s.mu.RLock()
	if tex, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return tex
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double check locking
	if tex, ok := s.cache[key]; ok {
		return tex
	}

	tex, err := load()
	if err != nil {
		s.log.Error("texture load failed", zap.Uint32("id", tex.ID), zap.Error(err))
	} else {
		s.log.Debug("texture loaded",
			zap.String("path", key),
			zap.Uint32("id", tex.ID),
			zap.Stringer("target", tex.Target),
			zap.Stringer("format", tex.Format),
			zap.Int("width", tex.Width),
			zap.Int("height", tex.Height),
		)
	}

	s.cache[key] = tex
	return tex
}

// Dispose deletes every cached texture.
func (s *TextureService) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, tex := range s.cache {
		id := tex.ID
		gl.DeleteTextures(1, &id)
		delete(s.cache, key)
	}
}
