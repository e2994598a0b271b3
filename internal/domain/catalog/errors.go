package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrUnknownEventType = errors.New("unknown event type")
)
