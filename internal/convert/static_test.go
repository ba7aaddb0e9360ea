package convert

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/backmassage/stickerpress/internal/platform"
)

// pngBytes encodes a solid-color NRGBA image as PNG.
func pngBytes(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func outputSize(t *testing.T, asset *Asset) (int, int) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(asset.Data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "webp" {
		t.Fatalf("output format = %q, want webp", format)
	}
	return cfg.Width, cfg.Height
}

func TestStaticDownscalesLongEdge(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{"landscape 1024x768", 1024, 768, 512, 384},
		{"portrait 768x1024", 768, 1024, 384, 512},
		{"wide 2048x512", 2048, 512, 512, 128},
		{"square 1000x1000", 1000, 1000, 512, 512},
		{"odd ratio 1023x767", 1023, 767, 512, 384},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, err := Static(pngBytes(t, tt.w, tt.h, color.NRGBA{R: 200, A: 255}))
			if err != nil {
				t.Fatalf("Static() error = %v", err)
			}
			if asset.Format != platform.FormatStatic {
				t.Errorf("Format = %q, want %q", asset.Format, platform.FormatStatic)
			}
			gotW, gotH := outputSize(t, asset)
			// Long edge must be exactly MaxEdge; short edge within 1px of the
			// aspect-preserving ideal.
			if gotW != tt.wantW && abs(gotW-tt.wantW) > 1 {
				t.Errorf("width = %d, want %d (±1)", gotW, tt.wantW)
			}
			if gotH != tt.wantH && abs(gotH-tt.wantH) > 1 {
				t.Errorf("height = %d, want %d (±1)", gotH, tt.wantH)
			}
			if gotW > MaxEdge || gotH > MaxEdge {
				t.Errorf("output %dx%d exceeds max edge %d", gotW, gotH, MaxEdge)
			}
		})
	}
}

func TestStaticNeverUpscales(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"small 100x50", 100, 50},
		{"exactly 512x512", 512, 512},
		{"512 long edge", 512, 200},
		{"tiny 1x1", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, err := Static(pngBytes(t, tt.w, tt.h, color.NRGBA{G: 128, A: 255}))
			if err != nil {
				t.Fatalf("Static() error = %v", err)
			}
			gotW, gotH := outputSize(t, asset)
			if gotW != tt.w || gotH != tt.h {
				t.Errorf("output = %dx%d, want unchanged %dx%d", gotW, gotH, tt.w, tt.h)
			}
		})
	}
}

func TestStaticPreservesTransparency(t *testing.T) {
	asset, err := Static(pngBytes(t, 600, 600, color.NRGBA{}))
	if err != nil {
		t.Fatalf("Static() error = %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(asset.Data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	_, _, _, a := img.At(256, 256).RGBA()
	// Lossy alpha may wobble slightly but a fully transparent input must
	// stay effectively transparent.
	if a > 0x0800 {
		t.Errorf("center alpha = %#x, want ~0", a)
	}
}

func TestStaticRejectsGarbage(t *testing.T) {
	_, err := Static([]byte("definitely not an image"))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Static() error = %v, want ErrDecode", err)
	}
	_, err = Static(nil)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Static(nil) error = %v, want ErrDecode", err)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
