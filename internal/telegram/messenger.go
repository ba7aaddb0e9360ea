package telegram

import (
	"context"
	"fmt"
	"net/url"

	"github.com/backmassage/stickerpress/internal/platform"
)

var _ platform.Messenger = (*Client)(nil)

// SendReply sends a plain text message to a chat.
func (c *Client) SendReply(ctx context.Context, chatID int64, text string) error {
	params := url.Values{}
	params.Set("chat_id", fmt.Sprint(chatID))
	params.Set("text", text)
	_, err := c.call(ctx, "sendMessage", params)
	return err
}

// SendSticker sends an existing sticker by reference handle.
func (c *Client) SendSticker(ctx context.Context, chatID int64, fileID string) error {
	params := url.Values{}
	params.Set("chat_id", fmt.Sprint(chatID))
	params.Set("sticker", fileID)
	_, err := c.call(ctx, "sendSticker", params)
	return err
}

// SendChatAction shows a typing/uploading indicator while a request runs.
func (c *Client) SendChatAction(ctx context.Context, chatID int64, action string) error {
	params := url.Values{}
	params.Set("chat_id", fmt.Sprint(chatID))
	params.Set("action", action)
	_, err := c.call(ctx, "sendChatAction", params)
	return err
}
