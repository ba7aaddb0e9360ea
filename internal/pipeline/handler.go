// Package pipeline orchestrates one media-to-sticker request: classify,
// convert, ensure the collection, append, reply. Requests are independent
// and may run concurrently; any stage failure is converted into a single
// user-facing reply at this boundary and never crashes the handling task.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/backmassage/stickerpress/internal/classify"
	"github.com/backmassage/stickerpress/internal/collection"
	"github.com/backmassage/stickerpress/internal/convert"
	"github.com/backmassage/stickerpress/internal/display"
	"github.com/backmassage/stickerpress/internal/platform"
)

// maxDetail bounds the technical detail string appended to failure replies.
const maxDetail = 200

// AnimatedConverter is the animated conversion capability. Satisfied by
// [*convert.Transcoder]; tests substitute a fake.
type AnimatedConverter interface {
	Convert(ctx context.Context, data []byte) (*convert.Asset, error)
}

// StaticConverter is the static conversion capability, [convert.Static] in
// production.
type StaticConverter func(data []byte) (*convert.Asset, error)

// Request is one inbound media submission.
type Request struct {
	Owner   platform.Owner
	ChatID  int64
	Payload classify.Payload
	Caption string
}

// Handler runs the conversion pipeline. All collaborators are injected; the
// handler itself holds no per-request state beyond the stats counters.
type Handler struct {
	static      StaticConverter
	animated    AnimatedConverter
	provisioner *collection.Provisioner
	appender    *collection.Appender
	msgr        platform.Messenger
	log         *zap.SugaredLogger
	stats       RunStats
}

// NewHandler wires the pipeline. static may be nil to use [convert.Static].
func NewHandler(
	static StaticConverter,
	animated AnimatedConverter,
	sets platform.StickerSets,
	msgr platform.Messenger,
	botHandle string,
	log *zap.SugaredLogger,
) *Handler {
	if static == nil {
		static = convert.Static
	}
	return &Handler{
		static:      static,
		animated:    animated,
		provisioner: collection.NewProvisioner(sets, botHandle, log),
		appender:    collection.NewAppender(sets),
		msgr:        msgr,
		log:         log,
	}
}

// Stats returns a snapshot of the lifetime counters.
func (h *Handler) Stats() Snapshot { return h.stats.Snapshot() }

// Process runs the linear state machine for one request:
// classify → convert → ensure collection → append → respond.
// No retries across stages and no rollback: a collection provisioned for a
// request that later fails is left in place. The returned error mirrors what
// was already reported to the user; callers only log it.
func (h *Handler) Process(ctx context.Context, req Request) error {
	log := h.log.With("request", uuid.NewString()[:8], "owner", req.Owner.ID)

	// Best effort; a missing typing indicator is not worth failing over.
	_ = h.msgr.SendChatAction(ctx, req.ChatID, "upload_document")

	kind, err := classify.Classify(req.Payload)
	if err != nil {
		return h.fail(ctx, log, req.ChatID, err)
	}
	log.Infow("processing media",
		"kind", kind, "size", display.FormatBytes(int64(len(req.Payload.Data))))

	var asset *convert.Asset
	switch kind {
	case classify.KindAnimated:
		asset, err = h.animated.Convert(ctx, req.Payload.Data)
	default:
		asset, err = h.static(req.Payload.Data)
	}
	if err != nil {
		return h.fail(ctx, log, req.ChatID, err)
	}

	name, title, err := h.provisioner.Ensure(ctx, req.Owner, kind)
	if err != nil {
		return h.fail(ctx, log, req.ChatID, err)
	}

	tag := platform.NormalizeTag(req.Caption)
	fileID, err := h.appender.Append(ctx, req.Owner.ID, name, asset, tag)
	if err != nil {
		return h.fail(ctx, log, req.ChatID, err)
	}

	h.stats.record(string(kind), false)
	log.Infow("sticker added",
		"set", name, "tag", tag, "output_size", display.FormatBytes(int64(len(asset.Data))))

	if err := h.msgr.SendSticker(ctx, req.ChatID, fileID); err != nil {
		log.Warnw("couldn't send sticker preview", "error", err)
	}
	reply := fmt.Sprintf("Added to set: %s\nOpen: https://t.me/addstickers/%s", title, name)
	if err := h.msgr.SendReply(ctx, req.ChatID, reply); err != nil {
		log.Warnw("couldn't send reply", "error", err)
	}
	return nil
}

// fail records the failure, sends the single user-visible diagnostic, and
// returns the original error for the caller's log.
func (h *Handler) fail(ctx context.Context, log *zap.SugaredLogger, chatID int64, err error) error {
	h.stats.record("", true)
	log.Errorw("request failed", "error", err)

	msg := userMessage(err) + "\nDetails: " + truncateDetail(err.Error())
	if sendErr := h.msgr.SendReply(ctx, chatID, msg); sendErr != nil {
		log.Warnw("couldn't deliver failure reply", "error", sendErr)
	}
	return err
}

// userMessage maps the error taxonomy to the human-readable part of the
// failure reply.
func userMessage(err error) string {
	var te *convert.TranscodeError
	switch {
	case errors.Is(err, classify.ErrUnsupportedMedia):
		return "I can't make a sticker out of that. Send a photo, image file, GIF, or video."
	case errors.Is(err, convert.ErrDecode):
		return "That image couldn't be read. Try another file."
	case errors.Is(err, convert.ErrTranscoderNotFound):
		return "Video conversion is unavailable right now: the server is missing FFmpeg. Ask the operator to install it."
	case errors.As(err, &te):
		return "Couldn't convert that video. It may be in a format the encoder rejects."
	default:
		return "Oops! Couldn't make the sticker. Please try again."
	}
}

// truncateDetail clips the technical detail to maxDetail bytes on a rune
// boundary.
func truncateDetail(s string) string {
	if len(s) <= maxDetail {
		return s
	}
	n := maxDetail
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n] + "…"
}
