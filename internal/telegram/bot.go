package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/backmassage/stickerpress/internal/classify"
	"github.com/backmassage/stickerpress/internal/pipeline"
	"github.com/backmassage/stickerpress/internal/platform"
)

const startText = "Hi! I turn photos and videos into stickers. " +
	"Just send me a file. /help for details."

const helpText = "Send me a photo/PNG/JPG/WEBP and I'll make a sticker.\n" +
	"Send a GIF/video and I'll make a video sticker.\n\n" +
	"Put an emoji in the caption (e.g. 😀) to bind it to the sticker.\n" +
	"I manage personal sets for you automatically: one static, one video."

// Processor handles one inbound media request. Satisfied by
// [*pipeline.Handler].
type Processor interface {
	Process(ctx context.Context, req pipeline.Request) error
}

// Bot routes inbound updates: commands to fixed replies, media to the
// conversion pipeline. Each media update is handled in its own goroutine;
// requests are independent by design.
type Bot struct {
	client    *Client
	processor Processor
	log       *zap.SugaredLogger
}

// NewBot wires the update loop to a processor.
func NewBot(client *Client, processor Processor, log *zap.SugaredLogger) *Bot {
	return &Bot{client: client, processor: processor, log: log}
}

// RunPolling consumes updates via long polling until ctx is cancelled.
func (b *Bot) RunPolling(ctx context.Context) error {
	// Polling and webhook delivery are mutually exclusive on the API side.
	if err := b.client.DeleteWebhook(ctx); err != nil {
		b.log.Warnw("couldn't clear webhook before polling", "error", err)
	}

	var offset int64
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		updates, err := b.client.GetUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b.log.Warnw("getUpdates failed, backing off", "error", err)
			select {
			case <-time.After(3 * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}
		for i := range updates {
			u := updates[i]
			offset = u.UpdateID + 1
			go b.handleUpdate(ctx, &u)
		}
	}
}

// RunWebhook registers the webhook and serves update deliveries on port
// until ctx is cancelled.
func (b *Bot) RunWebhook(ctx context.Context, webhookURL string, port int) error {
	if err := b.client.SetWebhook(ctx, webhookURL); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var u Update
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			b.log.Warnw("undecodable webhook delivery", "error", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		go b.handleUpdate(ctx, &u)
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (b *Bot) handleUpdate(ctx context.Context, u *Update) {
	msg := u.Message
	if msg == nil || msg.From == nil {
		return
	}

	switch strings.TrimSpace(msg.Text) {
	case "/start":
		b.reply(ctx, msg.Chat.ID, startText)
		return
	case "/help":
		b.reply(ctx, msg.Chat.ID, helpText)
		return
	}

	ref, ok := pickMedia(msg)
	if !ok {
		// Plain chatter; stay quiet rather than error on every text message.
		return
	}

	data, filePath, err := b.client.DownloadFile(ctx, ref.fileID)
	if err != nil {
		b.log.Errorw("media download failed", "error", err)
		b.reply(ctx, msg.Chat.ID, "Couldn't download that file from Telegram. Please try again.")
		return
	}

	ext := ref.ext
	if ext == "" {
		if ext = strings.ToLower(path.Ext(filePath)); ext == "" {
			ext = ".bin"
		}
	}

	req := pipeline.Request{
		Owner: platform.Owner{
			ID:          msg.From.ID,
			Handle:      msg.From.Username,
			DisplayName: msg.From.FirstName,
		},
		ChatID:  msg.Chat.ID,
		Payload: classify.Payload{Data: data, Ext: ext, MotionHint: ref.motion},
		Caption: msg.Caption,
	}
	// Process reports failures to the user itself; here we only log.
	_ = b.processor.Process(ctx, req)
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	if err := b.client.SendReply(ctx, chatID, text); err != nil {
		b.log.Warnw("reply failed", "error", err)
	}
}

// mediaRef is the chosen variant of an inbound media message.
type mediaRef struct {
	fileID string
	ext    string // Empty when only the downloaded file path can tell.
	motion bool   // Platform metadata marked this as video/animation.
}

// pickMedia selects the best media variant from a message: the largest photo
// size, or the animation/video/document reference. Reports false when the
// message carries no media.
func pickMedia(msg *Message) (mediaRef, bool) {
	switch {
	case len(msg.Photo) > 0:
		// Variants are ordered smallest first; take the best one.
		return mediaRef{fileID: msg.Photo[len(msg.Photo)-1].FileID, ext: ".jpg"}, true
	case msg.Animation != nil:
		return mediaRef{fileID: msg.Animation.FileID, ext: ".gif", motion: true}, true
	case msg.Video != nil:
		return mediaRef{fileID: msg.Video.FileID, ext: extOf(msg.Video.FileName, ".mp4"), motion: true}, true
	case msg.Document != nil:
		return mediaRef{fileID: msg.Document.FileID, ext: extOf(msg.Document.FileName, "")}, true
	default:
		return mediaRef{}, false
	}
}

// extOf extracts the lower-cased extension of name, or fallback when absent.
func extOf(name, fallback string) string {
	if ext := strings.ToLower(path.Ext(name)); ext != "" {
		return ext
	}
	return fallback
}
