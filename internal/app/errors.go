package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrRoundNotFound    = errors.New("round not found")
	ErrRoundNotComplete = errors.New("round not complete")
	ErrInvalidLength    = errors.New("round length out of bounds")
	ErrUnknownAircraft  = errors.New("unknown aircraft")
	ErrScoreSaved       = errors.New("score already saved")
)
