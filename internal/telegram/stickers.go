package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/backmassage/stickerpress/internal/platform"
)

// Compile-time check that Client satisfies the platform capability.
var _ platform.StickerSets = (*Client)(nil)

// Get fetches a sticker set by name. A definitive miss maps to
// [platform.ErrSetNotFound] via the error classifier.
func (c *Client) Get(ctx context.Context, name string) (*platform.StickerSet, error) {
	params := url.Values{}
	params.Set("name", name)
	raw, err := c.call(ctx, "getStickerSet", params)
	if err != nil {
		return nil, err
	}

	var set tgStickerSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("parse getStickerSet: %w", err)
	}

	out := &platform.StickerSet{Name: set.Name, Title: set.Title}
	for _, s := range set.Stickers {
		out.Stickers = append(out.Stickers, platform.Sticker{FileID: s.FileID, Emoji: s.Emoji})
	}
	return out, nil
}

// Create creates a new regular sticker set owned by ownerID with a single
// initial asset. The platform requires a non-empty initial set; the
// provisioner passes its placeholder here.
func (c *Client) Create(ctx context.Context, ownerID int64, name, title string, format platform.Format, initial platform.InputSticker) error {
	stickers, err := json.Marshal([]inputSticker{{
		Sticker:   "attach://sticker0",
		Format:    apiFormat(format),
		EmojiList: []string{initial.Emoji},
	}})
	if err != nil {
		return fmt.Errorf("marshal input sticker: %w", err)
	}

	params := url.Values{}
	params.Set("user_id", fmt.Sprint(ownerID))
	params.Set("name", name)
	params.Set("title", title)
	params.Set("sticker_type", "regular")
	params.Set("stickers", string(stickers))

	_, err = c.callMultipart(ctx, "createNewStickerSet", params,
		map[string][]byte{"sticker0": initial.Data})
	return err
}

// Add appends one asset plus its tag binding to an existing set.
func (c *Client) Add(ctx context.Context, ownerID int64, name string, sticker platform.InputSticker) error {
	payload, err := json.Marshal(inputSticker{
		Sticker:   "attach://sticker0",
		Format:    formatFromFilename(sticker.Filename),
		EmojiList: []string{sticker.Emoji},
	})
	if err != nil {
		return fmt.Errorf("marshal input sticker: %w", err)
	}

	params := url.Values{}
	params.Set("user_id", fmt.Sprint(ownerID))
	params.Set("name", name)
	params.Set("sticker", string(payload))

	_, err = c.callMultipart(ctx, "addStickerToSet", params,
		map[string][]byte{"sticker0": sticker.Data})
	return err
}

// Delete removes a sticker from its set by reference handle.
func (c *Client) Delete(ctx context.Context, fileID string) error {
	params := url.Values{}
	params.Set("sticker", fileID)
	_, err := c.call(ctx, "deleteStickerFromSet", params)
	return err
}

// apiFormat maps the platform format to the Bot API's input sticker format.
func apiFormat(f platform.Format) string {
	if f == platform.FormatVideo {
		return "video"
	}
	return "static"
}

// formatFromFilename derives the input sticker format from the upload
// filename the converter chose.
func formatFromFilename(name string) string {
	if strings.HasSuffix(name, ".webm") {
		return "video"
	}
	return "static"
}
