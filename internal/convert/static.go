// Package convert normalizes arbitrary user media into platform-compliant
// sticker assets: raster images into static WEBP stickers, videos and
// animations into short looping WEBM/VP9 stickers via an external
// transcoder.
package convert

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/backmassage/stickerpress/internal/platform"
)

// MaxEdge is the longest edge allowed for a sticker asset, in pixels.
const MaxEdge = 512

// staticQuality is the fixed WEBP encode quality (0-100). Non-adaptive:
// sticker inputs are small enough that tuning per-image buys nothing.
const staticQuality = 95

// Asset is a converted, constraint-satisfying sticker payload.
type Asset struct {
	Data   []byte
	Format platform.Format
}

// Static converts a raster image into a static WEBP sticker asset. The image
// is decoded to NRGBA (alpha preserved), downscaled with Lanczos resampling
// so the longest edge equals exactly [MaxEdge] when it exceeds it (never
// upscaled), and encoded at quality 95. Unparseable input fails with
// [ErrDecode].
func Static(data []byte) (*Asset, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	img := imaging.Clone(src)
	img = fitToMaxEdge(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: staticQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return &Asset{Data: buf.Bytes(), Format: platform.FormatStatic}, nil
}

// fitToMaxEdge downscales img so its longest edge equals MaxEdge, preserving
// aspect ratio. Images already within bounds are returned unchanged.
func fitToMaxEdge(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= MaxEdge && h <= MaxEdge {
		return img
	}
	if w >= h {
		return imaging.Resize(img, MaxEdge, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, MaxEdge, imaging.Lanczos)
}
