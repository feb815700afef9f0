package graphics

// TextureTarget is the binding point of a texture.
type TextureTarget int

const (
	Texture2D TextureTarget = iota
	TextureCubeMap
)

func (t TextureTarget) String() string {
	if t == TextureCubeMap {
		return "cubemap"
	}
	return "2d"
}

// PixelFormat is the GPU format chosen from the source channel count.
type PixelFormat int

const (
	FormatUnknown PixelFormat = iota
	FormatRed
	FormatRGB
	FormatRGBA
)

func (f PixelFormat) String() string {
	switch f {
	case FormatRed:
		return "RED"
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	default:
		return "UNKNOWN"
	}
}

// Channels returns the number of 8-bit components per pixel.
func (f PixelFormat) Channels() int {
	switch f {
	case FormatRed:
		return 1
	case FormatRGB:
		return 3
	case FormatRGBA:
		return 4
	default:
		return 0
	}
}

// FormatForChannels maps 1, 3 and 4 channels to RED, RGB and RGBA.
func FormatForChannels(n int) PixelFormat {
	switch n {
	case 1:
		return FormatRed
	case 3:
		return FormatRGB
	case 4:
		return FormatRGBA
	default:
		return FormatUnknown
	}
}

// Texture is a GPU-resident image. A texture whose source failed to decode
// keeps its ID with zero dimensions.
type Texture struct {
	ID     uint32
	Target TextureTarget
	Width  int
	Height int
	Format PixelFormat
}

// CubeFace indexes the six faces of a cubemap in upload order.
type CubeFace int

const (
	FacePositiveX CubeFace = iota // right
	FaceNegativeX                 // left
	FacePositiveY                 // top
	FaceNegativeY                 // bottom
	FacePositiveZ                 // front
	FaceNegativeZ                 // back
	CubeFaceCount
)

var cubeFaceNames = [CubeFaceCount]string{"right", "left", "top", "bottom", "front", "back"}

func (f CubeFace) String() string {
	if f < 0 || f >= CubeFaceCount {
		return "unknown"
	}
	return cubeFaceNames[f]
}
