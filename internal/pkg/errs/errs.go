package errs

import (
	"errors"
	"strings"
)

// Sentinel errors. Every concrete error type in this package unwraps to exactly
// one of them, so callers classify failures with errors.Is.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrDriverOccupied    = errors.New("driver is occupied")
	ErrInvalidState      = errors.New("invalid state")
	ErrNoRoute           = errors.New("no route assigned")
)

// sanitize flattens a formatted value onto a single line so that user supplied
// strings cannot break log records apart.
func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return msg + " (cause: " + cause.Error() + ")"
}
