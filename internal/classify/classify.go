// Package classify inspects an inbound media payload's declared kind and
// extension and selects the conversion path: static image or animated video.
package classify

import (
	"errors"
	"strings"
)

// Kind is the conversion category of an inbound payload.
type Kind string

const (
	KindStatic   Kind = "static"   // Raster image -> WEBP sticker.
	KindAnimated Kind = "animated" // Video/animation -> WEBM video sticker.
)

// Suffix returns the collection name suffix for the kind.
func (k Kind) Suffix() string {
	if k == KindAnimated {
		return "_video"
	}
	return "_static"
}

// ErrUnsupportedMedia is returned when a payload carries no usable content.
var ErrUnsupportedMedia = errors.New("unsupported media payload")

// motionExts are the extensions that force the animated path even when the
// platform's message metadata did not flag the content as video.
var motionExts = map[string]bool{
	".gif":  true,
	".mp4":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
	".avi":  true,
}

// Payload is the classifier's view of an inbound media message: the raw
// bytes, the declared filename extension, and the platform's own metadata
// hint that the content is a video or animation.
type Payload struct {
	Data       []byte
	Ext        string // Including the dot, e.g. ".jpg". May be empty.
	MotionHint bool   // Set when the message metadata marks video/animation.
}

// Classify selects the conversion path for a payload. The payload is
// animated when the platform marked it as video/animation or its extension
// is in the known motion-format set; anything else with content is static.
// An empty payload fails with [ErrUnsupportedMedia].
func Classify(p Payload) (Kind, error) {
	if len(p.Data) == 0 {
		return "", ErrUnsupportedMedia
	}
	if p.MotionHint || motionExts[normalizeExt(p.Ext)] {
		return KindAnimated, nil
	}
	return KindStatic, nil
}

// normalizeExt lower-cases an extension and ensures the leading dot, so both
// "GIF" and ".gif" match the motion set.
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
