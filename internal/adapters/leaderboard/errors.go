package leaderboard

import "errors"

// Sentinel kinds for leaderboard errors.
var (
	ErrStore = errors.New("leaderboard store")
)
