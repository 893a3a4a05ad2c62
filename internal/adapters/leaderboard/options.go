package leaderboard

import "time"

// Option applies a configuration option to the Board.
type Option func(*Board)

// WithClock injects a time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		if now != nil {
			b.now = now
		}
	}
}
