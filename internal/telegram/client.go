// Package telegram adapts the Telegram Bot API to the capability interfaces
// in internal/platform: sticker-set management, replies, file download, and
// the update loop. It is the only package that knows the wire protocol; the
// conversion core never imports it.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.telegram.org"

// Client handles all communication with the Bot API.
type Client struct {
	token      string
	apiBase    string
	HTTPClient *http.Client
}

// NewClient builds a Client for the given bot credential.
func NewClient(token string) *Client {
	return &Client{
		token:   token,
		apiBase: defaultAPIBase,
		// getUpdates long-polls for up to 30s; leave headroom.
		HTTPClient: &http.Client{Timeout: 65 * time.Second},
	}
}

// call POSTs a form-encoded method call and returns the raw result payload.
func (c *Client) call(ctx context.Context, method string, params url.Values) (json.RawMessage, error) {
	body := strings.NewReader(params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(method, req)
}

// callMultipart POSTs a method call with file attachments.
func (c *Client) callMultipart(ctx context.Context, method string, params url.Values, files map[string][]byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, vals := range params {
		for _, v := range vals {
			if err := mw.WriteField(key, v); err != nil {
				return nil, fmt.Errorf("build %s form: %w", method, err)
			}
		}
	}
	for name, data := range files {
		part, err := mw.CreateFormFile(name, name)
		if err != nil {
			return nil, fmt.Errorf("build %s form file: %w", method, err)
		}
		if _, err := part.Write(data); err != nil {
			return nil, fmt.Errorf("write %s form file: %w", method, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish %s form: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), &buf)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(method, req)
}

func (c *Client) do(method string, req *http.Request) (json.RawMessage, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, wrapNetworkError(method, err)
	}
	defer resp.Body.Close()

	var api apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return nil, wrapNetworkError(method, fmt.Errorf("decode response: %w", err))
	}
	if !api.OK {
		return nil, classifyAPIError(method, api.ErrorCode, api.Description)
	}
	return api.Result, nil
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.apiBase, c.token, method)
}

// GetMe fetches the bot's own identity. Called once at startup; the bot
// handle feeds collection name resolution.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	raw, err := c.call(ctx, "getMe", url.Values{})
	if err != nil {
		return nil, err
	}
	var me User
	if err := json.Unmarshal(raw, &me); err != nil {
		return nil, fmt.Errorf("parse getMe: %w", err)
	}
	return &me, nil
}

// GetUpdates long-polls for updates after offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64) ([]Update, error) {
	params := url.Values{}
	params.Set("offset", fmt.Sprint(offset))
	params.Set("timeout", "30")
	params.Set("allowed_updates", `["message"]`)

	raw, err := c.call(ctx, "getUpdates", params)
	if err != nil {
		return nil, err
	}
	var updates []Update
	if err := json.Unmarshal(raw, &updates); err != nil {
		return nil, fmt.Errorf("parse getUpdates: %w", err)
	}
	return updates, nil
}

// SetWebhook registers the webhook URL for update delivery.
func (c *Client) SetWebhook(ctx context.Context, webhookURL string) error {
	params := url.Values{}
	params.Set("url", webhookURL)
	params.Set("allowed_updates", `["message"]`)
	_, err := c.call(ctx, "setWebhook", params)
	return err
}

// DeleteWebhook removes webhook delivery, required before long polling.
func (c *Client) DeleteWebhook(ctx context.Context) error {
	_, err := c.call(ctx, "deleteWebhook", url.Values{})
	return err
}

// DownloadFile resolves a file reference and fetches its content.
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, string, error) {
	params := url.Values{}
	params.Set("file_id", fileID)
	raw, err := c.call(ctx, "getFile", params)
	if err != nil {
		return nil, "", err
	}
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, "", fmt.Errorf("parse getFile: %w", err)
	}

	dlURL := fmt.Sprintf("%s/file/bot%s/%s", c.apiBase, c.token, f.FilePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dlURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build download request: %w", err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, "", wrapNetworkError("downloadFile", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", wrapNetworkError("downloadFile", fmt.Errorf("status %d", resp.StatusCode))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", wrapNetworkError("downloadFile", err)
	}
	return data, f.FilePath, nil
}
