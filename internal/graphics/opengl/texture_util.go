package opengl

import (
	"fmt"

	"skyfort/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/multierr"
)

// LoadTexture creates a mipmapped, repeating 2D texture from an image file.
// The texture object is always created; when the image cannot be decoded
// the returned error is non-nil and the texture has no image data.
func LoadTexture(path string) (graphics.Texture, error) {
	tex := graphics.Texture{Target: graphics.Texture2D}
	gl.GenTextures(1, &tex.ID)

	px, err := graphics.LoadPixels(path)
	if err != nil {
		return tex, fmt.Errorf("texture failed to load at path %s: %w", path, err)
	}
	if px.Format == graphics.FormatUnknown {
		return tex, fmt.Errorf("texture %s: unsupported channel layout", path)
	}

	gl.BindTexture(gl.TEXTURE_2D, tex.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	format := glFormat(px.Format)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		int32(format),
		int32(px.Width),
		int32(px.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		gl.Ptr(px.Data),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	tex.Width, tex.Height, tex.Format = px.Width, px.Height, px.Format
	return tex, nil
}

// LoadCubemap creates a cubemap from six RGB faces given in
// right, left, top, bottom, front, back order. Faces that fail to decode
// are skipped and reported together; the texture object is kept.
func LoadCubemap(faces [graphics.CubeFaceCount]string) (graphics.Texture, error) {
	tex := graphics.Texture{Target: graphics.TextureCubeMap, Format: graphics.FormatRGB}
	gl.GenTextures(1, &tex.ID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	var errs error
	for i, path := range faces {
		px, err := graphics.LoadPixelsAs(path, graphics.FormatRGB)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("cubemap %s face failed to load at path %s: %w", graphics.CubeFace(i), path, err))
			continue
		}
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0,
			gl.RGB,
			int32(px.Width),
			int32(px.Height),
			0,
			gl.RGB,
			gl.UNSIGNED_BYTE,
			gl.Ptr(px.Data),
		)
		if tex.Width == 0 {
			tex.Width, tex.Height = px.Width, px.Height
		}
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	return tex, errs
}
