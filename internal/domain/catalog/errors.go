package catalog

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrTooSmall        = errors.New("catalog too small")
	ErrEmptyID         = errors.New("empty record id")
	ErrDuplicateID     = errors.New("duplicate record id")
	ErrUnknownCategory = errors.New("unknown category")
)
