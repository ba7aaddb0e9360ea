// Package platform defines the capability interfaces the conversion core
// needs from the hosting messaging platform, together with the shared data
// model (sticker sets, assets, tag bindings) and the error taxonomy used to
// classify outbound call failures.
//
// The core never talks to a concrete transport; the Telegram adapter in
// internal/telegram implements these interfaces, and the tests use fakes.
package platform

import "context"

// Format identifies the sticker asset encoding accepted by the platform.
type Format string

const (
	FormatStatic Format = "static" // WEBP still image.
	FormatVideo  Format = "video"  // WEBM/VP9 short loop.
)

// Sticker is one entry of a hosted sticker set. FileID is the platform's
// permanent reference handle for the asset.
type Sticker struct {
	FileID string
	Emoji  string
}

// StickerSet is a named, owner-scoped collection of stickers hosted by the
// platform. Stickers are ordered; the platform appends new entries at the end.
type StickerSet struct {
	Name     string
	Title    string
	Stickers []Sticker
}

// InputSticker is an asset plus its tag binding, ready to be uploaded.
type InputSticker struct {
	Data     []byte
	Filename string
	Emoji    string
}

// StickerSets is the outbound sticker-set management capability.
//
// Get must return [ErrSetNotFound] only for a definitive miss; transient
// failures (network, server errors) must surface as some other error so the
// provisioner does not mistake an outage for a missing set. Create must
// return [ErrSetAlreadyExists] when the name is already taken.
type StickerSets interface {
	Get(ctx context.Context, name string) (*StickerSet, error)
	Create(ctx context.Context, ownerID int64, name, title string, format Format, initial InputSticker) error
	Add(ctx context.Context, ownerID int64, name string, sticker InputSticker) error
	Delete(ctx context.Context, fileID string) error
}

// Messenger is the outbound reply capability used by the orchestrator.
type Messenger interface {
	SendReply(ctx context.Context, chatID int64, text string) error
	SendSticker(ctx context.Context, chatID int64, fileID string) error
	SendChatAction(ctx context.Context, chatID int64, action string) error
}

// Owner identifies the end user a collection belongs to. Handle may be empty
// (not every user has a public handle); DisplayName may be empty too.
type Owner struct {
	ID          int64
	Handle      string
	DisplayName string
}
