package question

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrPoolTooSmall = errors.New("pool too small")
)
