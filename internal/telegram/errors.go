package telegram

import (
	"fmt"
	"strings"

	"github.com/backmassage/stickerpress/internal/platform"
)

// classifyAPIError maps a Bot API failure onto the platform error taxonomy.
// The API reports conditions in the description text, so matching is by
// substring; anything unrecognized becomes a transient *platform.APIError,
// which is exactly what keeps the provisioner from mistaking an outage for
// a missing set.
func classifyAPIError(method string, code int, description string) error {
	desc := strings.ToUpper(description)
	switch {
	case strings.Contains(desc, "STICKERSET_INVALID"),
		strings.Contains(desc, "STICKER SET NOT FOUND"):
		return fmt.Errorf("%w: %s", platform.ErrSetNotFound, description)
	case strings.Contains(desc, "ALREADY OCCUPIED"),
		strings.Contains(desc, "ALREADY TAKEN"):
		return fmt.Errorf("%w: %s", platform.ErrSetAlreadyExists, description)
	default:
		return &platform.APIError{Op: method, Status: code, Desc: description}
	}
}

// wrapNetworkError wraps transport-level failures (DNS, timeouts, bad
// responses) as transient platform errors.
func wrapNetworkError(method string, err error) error {
	return &platform.APIError{Op: method, Err: err}
}
