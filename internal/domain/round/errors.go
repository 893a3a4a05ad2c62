package round

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNotEnoughAircraft is a configuration error: the enabled
	// categories leave fewer than four eligible aircraft.
	ErrNotEnoughAircraft = errors.New("not enough aircraft after filtering")
	ErrNoActiveRound     = errors.New("no active round")
	ErrAlreadyAnswered   = errors.New("question already answered")
	ErrAnswerPending     = errors.New("current question not answered")
	ErrRoundComplete     = errors.New("round already complete")
)
