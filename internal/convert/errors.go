package convert

import (
	"errors"
	"fmt"
)

// Sentinel errors for conversion failures the orchestrator reports to users.
var (
	// ErrDecode means the input could not be parsed as an image.
	ErrDecode = errors.New("cannot decode image")

	// ErrTranscoderNotFound means the external transcoder binary is not
	// resolvable on PATH. This is an operator error, not a user error.
	ErrTranscoderNotFound = errors.New("transcoder binary not found on PATH")
)

// maxDiagnostic bounds the transcoder stderr carried in a TranscodeError.
const maxDiagnostic = 500

// TranscodeError reports a failed transcoder run: nonzero exit, missing
// output file, or a timeout. Stderr carries the transcoder's diagnostic
// output truncated to 500 characters.
type TranscodeError struct {
	Stderr string
	Err    error
}

func (e *TranscodeError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("transcode failed: %v: %s", e.Err, e.Stderr)
	}
	return fmt.Sprintf("transcode failed: %v", e.Err)
}

func (e *TranscodeError) Unwrap() error { return e.Err }

// truncate clips s to at most n bytes, on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}
