package journal

import "errors"

var (
	// ErrOutOfRange entry position does not exist
	ErrOutOfRange = errors.New("journal: position out of range")
)
