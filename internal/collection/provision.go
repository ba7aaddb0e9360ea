// Package collection manages per-user sticker collections on the platform:
// idempotent get-or-create provisioning and asset appending. It never caches
// collection state in-process; the platform's registry is always re-queried.
package collection

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/backmassage/stickerpress/internal/classify"
	"github.com/backmassage/stickerpress/internal/naming"
	"github.com/backmassage/stickerpress/internal/platform"
)

// Provisioner ensures a user's sticker collection for a given kind exists.
type Provisioner struct {
	sets      platform.StickerSets
	botHandle string
	log       *zap.SugaredLogger
}

// NewProvisioner builds a Provisioner. botHandle is the bot's public handle,
// part of every resolved collection name.
func NewProvisioner(sets platform.StickerSets, botHandle string, log *zap.SugaredLogger) *Provisioner {
	return &Provisioner{sets: sets, botHandle: botHandle, log: log}
}

// Ensure resolves the owner's collection name for kind and guarantees the
// collection exists on the platform. The common path is a pure lookup. On a
// definitive miss the collection is bootstrapped: created with a transparent
// placeholder (the platform rejects empty initial sets), which is deleted
// immediately after. A create that loses a concurrent race surfaces as
// [platform.ErrSetAlreadyExists] and is absorbed — the racer's collection is
// just as good as ours. Transient lookup errors propagate; they do not
// trigger creation.
func (p *Provisioner) Ensure(ctx context.Context, owner platform.Owner, kind classify.Kind) (name, title string, err error) {
	name, title = naming.Resolve(owner, p.botHandle, kind)

	_, err = p.sets.Get(ctx, name)
	switch {
	case err == nil:
		return name, title, nil
	case errors.Is(err, platform.ErrSetNotFound):
		// Fall through to creation.
	default:
		return "", "", fmt.Errorf("look up sticker set %q: %w", name, err)
	}

	placeholder, err := buildPlaceholder()
	if err != nil {
		return "", "", err
	}

	format := platform.FormatStatic
	if kind == classify.KindAnimated {
		format = platform.FormatVideo
	}

	err = p.sets.Create(ctx, owner.ID, name, title, format, placeholder)
	switch {
	case err == nil:
		p.log.Infow("created sticker set", "name", name, "format", format)
		p.removePlaceholder(ctx, name)
	case errors.Is(err, platform.ErrSetAlreadyExists):
		// Lost a concurrent create race; the set exists now, which is all
		// Ensure promises.
		p.log.Debugw("sticker set created concurrently", "name", name)
	default:
		return "", "", fmt.Errorf("create sticker set %q: %w", name, err)
	}

	return name, title, nil
}

// removePlaceholder deletes the bootstrap placeholder from a freshly created
// set. Failure is non-fatal: the set stays usable with a lingering
// placeholder, so we log and proceed.
func (p *Provisioner) removePlaceholder(ctx context.Context, name string) {
	set, err := p.sets.Get(ctx, name)
	if err != nil {
		p.log.Warnw("couldn't re-fetch set to delete placeholder", "name", name, "error", err)
		return
	}
	if len(set.Stickers) == 0 {
		return
	}
	if err := p.sets.Delete(ctx, set.Stickers[0].FileID); err != nil {
		p.log.Warnw("couldn't delete placeholder", "name", name, "error", err)
	}
}
