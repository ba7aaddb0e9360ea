package platform

import (
	"strings"
	"unicode/utf8"
)

// DefaultTag is the emoji bound to an asset when the user supplies none.
const DefaultTag = "🧩"

// maxTagRunes is the longest caption accepted verbatim as a tag binding.
// Anything longer is treated as malformed and replaced by DefaultTag.
const maxTagRunes = 10

// NormalizeTag derives the tag binding from a user-supplied caption.
// The caption is trimmed; an empty or over-long result falls back to
// [DefaultTag]. Length is counted in runes, not bytes, so a single emoji
// always fits.
func NormalizeTag(caption string) string {
	tag := strings.TrimSpace(caption)
	if tag == "" || utf8.RuneCountInString(tag) > maxTagRunes {
		return DefaultTag
	}
	return tag
}
