package collection

import (
	"context"
	"fmt"

	"github.com/backmassage/stickerpress/internal/convert"
	"github.com/backmassage/stickerpress/internal/platform"
)

// Appender adds converted assets to an already provisioned collection.
type Appender struct {
	sets platform.StickerSets
}

// NewAppender builds an Appender over the platform's sticker-set capability.
func NewAppender(sets platform.StickerSets) *Appender {
	return &Appender{sets: sets}
}

// Append uploads the asset with its tag binding to the named set and returns
// the platform's reference handle for the new entry. The set must already
// exist. No dedup: repeated calls append repeated entries.
func (a *Appender) Append(ctx context.Context, ownerID int64, setName string, asset *convert.Asset, tag string) (string, error) {
	if tag == "" {
		tag = platform.DefaultTag
	}

	filename := "sticker.webp"
	if asset.Format == platform.FormatVideo {
		filename = "sticker.webm"
	}

	err := a.sets.Add(ctx, ownerID, setName, platform.InputSticker{
		Data:     asset.Data,
		Filename: filename,
		Emoji:    tag,
	})
	if err != nil {
		return "", fmt.Errorf("add sticker to %q: %w", setName, err)
	}

	// The platform appends at the end; re-fetch and take the last entry to
	// learn the new asset's reference.
	set, err := a.sets.Get(ctx, setName)
	if err != nil {
		return "", fmt.Errorf("re-fetch %q after append: %w", setName, err)
	}
	if len(set.Stickers) == 0 {
		return "", fmt.Errorf("sticker set %q empty after append", setName)
	}
	return set.Stickers[len(set.Stickers)-1].FileID, nil
}
