package collection

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/backmassage/stickerpress/internal/platform"
)

// placeholderEdge is the pixel size of the bootstrap placeholder. The
// platform requires a non-empty initial set on creation; a minimal fully
// transparent image satisfies that and is deleted right after.
const placeholderEdge = 32

// buildPlaceholder encodes the minimal valid placeholder asset.
func buildPlaceholder() (platform.InputSticker, error) {
	img := imaging.New(placeholderEdge, placeholderEdge, color.NRGBA{})

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: true}); err != nil {
		return platform.InputSticker{}, fmt.Errorf("encode placeholder: %w", err)
	}
	return platform.InputSticker{
		Data:     buf.Bytes(),
		Filename: "ph.webp",
		Emoji:    platform.DefaultTag,
	}, nil
}
