// Package naming derives deterministic, collision-resistant sticker set
// names and display titles per owner and kind. Names are a pure function of
// owner identity, kind, and bot identity, so the same owner always resolves
// to the same set across restarts — that determinism is what makes
// collection provisioning idempotent.
package naming

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/backmassage/stickerpress/internal/classify"
	"github.com/backmassage/stickerpress/internal/platform"
)

var reHandleUnsafe = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// SanitizeHandle maps an owner's public handle to the set-name token:
// every character outside [A-Za-z0-9_] becomes "_" and the result is
// lower-cased. An owner without a public handle gets "user<ownerID>".
func SanitizeHandle(handle string, ownerID int64) string {
	if handle == "" {
		return "user" + strconv.FormatInt(ownerID, 10)
	}
	return strings.ToLower(reHandleUnsafe.ReplaceAllString(handle, "_"))
}

// Resolve derives the sticker set name and display title for an owner and
// kind. Name shape: <sanitized-handle><kind-suffix>_by_<botHandle>. Set
// names are scoped per-bot by platform convention, so the bot handle suffix
// guarantees global uniqueness per owner/kind.
func Resolve(owner platform.Owner, botHandle string, kind classify.Kind) (name, title string) {
	name = SanitizeHandle(owner.Handle, owner.ID) + kind.Suffix() + "_by_" + botHandle

	display := owner.DisplayName
	if display == "" {
		display = "User"
	}
	switch kind {
	case classify.KindAnimated:
		title = display + "'s Video Stickers"
	default:
		title = display + "'s Static Stickers"
	}
	return name, title
}
