package graphics

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Pixels is tightly packed 8-bit image data ready for upload, top row first.
type Pixels struct {
	Width  int
	Height int
	Format PixelFormat
	Data   []byte
}

// DecodeFile decodes any registered image format (JPEG, PNG, BMP, TIFF, WebP).
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// ChannelCount reports how many channels the source image carries:
// 1 for grayscale, 4 when it has an alpha channel, 3 otherwise.
func ChannelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.NRGBA, *image.NRGBA64:
		return 4
	case *image.YCbCr, *image.CMYK:
		return 3
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// LoadPixels decodes path and packs it in its natural format.
func LoadPixels(path string) (Pixels, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return Pixels{}, err
	}
	return ToPixels(img, FormatForChannels(ChannelCount(img))), nil
}

// LoadPixelsAs decodes path and packs it in the given format.
func LoadPixelsAs(path string, format PixelFormat) (Pixels, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return Pixels{}, err
	}
	return ToPixels(img, format), nil
}

// ToPixels converts img to straight-alpha bytes with format's channel count.
// An unknown format packs RGBA.
func ToPixels(img image.Image, format PixelFormat) Pixels {
	if format == FormatUnknown {
		format = FormatRGBA
	}

	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		// draw.Src premultiplies on the way through; copy rows to keep
		// straight alpha exact.
		for y := 0; y < b.Dy(); y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(nrgba.Pix[y*nrgba.Stride:(y+1)*nrgba.Stride], src.Pix[off:off+4*b.Dx()])
		}
	} else {
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	channels := format.Channels()
	out := Pixels{
		Width:  b.Dx(),
		Height: b.Dy(),
		Format: format,
		Data:   make([]byte, 0, b.Dx()*b.Dy()*channels),
	}

	if channels == 4 {
		out.Data = append(out.Data, nrgba.Pix...)
		return out
	}
	for i := 0; i < len(nrgba.Pix); i += 4 {
		out.Data = append(out.Data, nrgba.Pix[i:i+channels]...)
	}
	return out
}
