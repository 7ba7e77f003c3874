package emit

import "errors"

// Sentinel kinds for emitter failures.
var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidSource     = errors.New("generated source is invalid")
)
