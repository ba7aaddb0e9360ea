package platform

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by StickerSets implementations. Adapters must map
// their transport's failure modes onto these so the provisioner can tell a
// definitive miss from a transient outage.
var (
	// ErrSetNotFound means the platform definitively reported that no set
	// with the requested name exists.
	ErrSetNotFound = errors.New("sticker set not found")

	// ErrSetAlreadyExists means a create call lost a race: a set with the
	// requested name already exists. Callers treat this as benign.
	ErrSetAlreadyExists = errors.New("sticker set name already taken")
)

// APIError wraps any outbound platform call failure that is not one of the
// sentinel conditions above: network errors, server errors, rate limits.
type APIError struct {
	Op     string // The logical operation, e.g. "getStickerSet".
	Status int    // HTTP-ish status code when known, 0 otherwise.
	Desc   string // Platform-provided description, may be empty.
	Err    error  // Underlying cause, may be nil.
}

func (e *APIError) Error() string {
	if e.Desc != "" {
		return fmt.Sprintf("platform %s: %s", e.Op, e.Desc)
	}
	if e.Err != nil {
		return fmt.Sprintf("platform %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("platform %s failed (status %d)", e.Op, e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }
