package graphics

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestChannelCount(t *testing.T) {
	rect := image.Rect(0, 0, 2, 2)

	translucent := image.NewRGBA(rect)
	translucent.Set(0, 0, color.RGBA{10, 20, 30, 128})

	opaque := image.NewRGBA(rect)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			opaque.Set(x, y, color.RGBA{1, 2, 3, 255})
		}
	}

	tests := []struct {
		name string
		img  image.Image
		want int
	}{
		{"gray", image.NewGray(rect), 1},
		{"gray16", image.NewGray16(rect), 1},
		{"ycbcr", image.NewYCbCr(rect, image.YCbCrSubsampleRatio420), 3},
		{"nrgba", image.NewNRGBA(rect), 4},
		{"opaque rgba", opaque, 3},
		{"translucent rgba", translucent, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChannelCount(tt.img); got != tt.want {
				t.Errorf("ChannelCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatForChannels(t *testing.T) {
	tests := []struct {
		n    int
		want PixelFormat
	}{
		{1, FormatRed},
		{2, FormatUnknown},
		{3, FormatRGB},
		{4, FormatRGBA},
	}
	for _, tt := range tests {
		got := FormatForChannels(tt.n)
		if got != tt.want {
			t.Errorf("FormatForChannels(%d) = %v, want %v", tt.n, got, tt.want)
		}
		if got != FormatUnknown && got.Channels() != tt.n {
			t.Errorf("%v.Channels() = %d, want %d", got, got.Channels(), tt.n)
		}
	}
}

func TestToPixelsPacking(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 4})

	tests := []struct {
		format PixelFormat
		want   []byte
	}{
		{FormatRGBA, []byte{200, 100, 50, 255, 1, 2, 3, 4}},
		{FormatRGB, []byte{200, 100, 50, 1, 2, 3}},
		{FormatRed, []byte{200, 1}},
		{FormatUnknown, []byte{200, 100, 50, 255, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			px := ToPixels(img, tt.format)
			if px.Width != 2 || px.Height != 1 {
				t.Errorf("size = %dx%d, want 2x1", px.Width, px.Height)
			}
			if !bytes.Equal(px.Data, tt.want) {
				t.Errorf("data = %v, want %v", px.Data, tt.want)
			}
		})
	}
}

func TestToPixelsOffsetBounds(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 7, 6))
	src.SetGray(5, 5, color.Gray{Y: 9})
	src.SetGray(6, 5, color.Gray{Y: 77})

	px := ToPixels(src, FormatRed)
	if !bytes.Equal(px.Data, []byte{9, 77}) {
		t.Errorf("data = %v, want [9 77]", px.Data)
	}
}

func TestLoadPixelsPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sand.png")

	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(2, 1, color.Gray{Y: 180})
	writeFile(t, path, func(buf *bytes.Buffer) error { return png.Encode(buf, img) })

	px, err := LoadPixels(path)
	if err != nil {
		t.Fatalf("LoadPixels failed: %v", err)
	}
	if px.Format != FormatRed {
		t.Errorf("format = %v, want RED", px.Format)
	}
	if len(px.Data) != 6 || px.Data[5] != 180 {
		t.Errorf("unexpected data %v", px.Data)
	}
}

func TestLoadPixelsAsBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "right.bmp")

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	writeFile(t, path, func(buf *bytes.Buffer) error { return bmp.Encode(buf, img) })

	px, err := LoadPixelsAs(path, FormatRGB)
	if err != nil {
		t.Fatalf("LoadPixelsAs failed: %v", err)
	}
	if px.Format != FormatRGB || len(px.Data) != 12 {
		t.Fatalf("unexpected pixels: format %v len %d", px.Format, len(px.Data))
	}
	if px.Data[0] != 10 || px.Data[1] != 20 || px.Data[2] != 30 {
		t.Errorf("unexpected first pixel %v", px.Data[:3])
	}
}

func TestLoadPixelsErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPixels(filepath.Join(dir, "missing.jpg")); err == nil {
		t.Error("expected error for missing file")
	}

	corrupt := filepath.Join(dir, "wall2.jpg")
	if err := os.WriteFile(corrupt, []byte("not an image"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadPixels(corrupt); err == nil {
		t.Error("expected error for corrupt file")
	}
}

func writeFile(t *testing.T, path string, encode func(*bytes.Buffer) error) {
	t.Helper()
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}
