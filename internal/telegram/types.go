package telegram

import "encoding/json"

// Bot API wire types. Only the fields this bot reads are declared.

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
	ErrorCode   int             `json:"error_code"`
}

// User is a Telegram account, including the bot's own identity from getMe.
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// Update is one entry from getUpdates or a webhook delivery.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message is an inbound chat message.
type Message struct {
	MessageID int64       `json:"message_id"`
	From      *User       `json:"from"`
	Chat      Chat        `json:"chat"`
	Text      string      `json:"text"`
	Caption   string      `json:"caption"`
	Photo     []PhotoSize `json:"photo"`
	Animation *Animation  `json:"animation"`
	Video     *Video      `json:"video"`
	Document  *Document   `json:"document"`
}

type Chat struct {
	ID int64 `json:"id"`
}

// PhotoSize is one variant of a photo; Telegram sends variants smallest
// first.
type PhotoSize struct {
	FileID string `json:"file_id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Animation struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
}

type Video struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
}

type Document struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
}

// File is the getFile result; FilePath feeds the download endpoint.
type File struct {
	FileID   string `json:"file_id"`
	FilePath string `json:"file_path"`
}

type tgSticker struct {
	FileID string `json:"file_id"`
	Emoji  string `json:"emoji"`
}

type tgStickerSet struct {
	Name     string      `json:"name"`
	Title    string      `json:"title"`
	Stickers []tgSticker `json:"stickers"`
}

// inputSticker is the JSON shape of one sticker in createNewStickerSet /
// addStickerToSet requests. The sticker field references a multipart part
// via the attach:// scheme.
type inputSticker struct {
	Sticker   string   `json:"sticker"`
	Format    string   `json:"format"`
	EmojiList []string `json:"emoji_list"`
}
