package prefetch

import "errors"

// Sentinel kinds for prefetch errors.
var (
	ErrClosed = errors.New("queue closed")
)
