package sorting

import "errors"

var (
	// ErrUnknownKind indicates an algorithm name or kind outside the supported set.
	ErrUnknownKind = errors.New("sorting: unknown algorithm")
)
