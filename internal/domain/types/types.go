// Package types holds the read shapes shared between the service layer and
// the HTTP API. Handlers and the orchestrator exchange these instead of
// domain structs so the wire format stays in one place.
package types

import "time"

// Round lifecycle states as exposed over the API.
const (
	StateMenu          = "menu"
	StateInRound       = "in_round"
	StateRoundComplete = "round_complete"
)

// Option is one answer choice. The correct flag is deliberately absent;
// question payloads must never reveal the answer.
type Option struct {
	ID    string `json:"id"`
	Model string `json:"model"`
}

// QuestionView is the current question as shown to the player.
type QuestionView struct {
	Index            int      `json:"index"` // 1-based
	Total            int      `json:"total"`
	ImageURL         string   `json:"image_url"`
	Options          []Option `json:"options"`
	TimeLimitSec     float64  `json:"time_limit_sec"`
	TimeRemainingSec float64  `json:"time_remaining_sec"`
}

// RoundView is the full state of one round.
type RoundView struct {
	RoundID    string        `json:"round_id"`
	State      string        `json:"state"`
	Score      int           `json:"score"`
	Streak     int           `json:"streak"`
	BestStreak int           `json:"best_streak"`
	Question   *QuestionView `json:"question,omitempty"`
	Summary    *SummaryView  `json:"summary,omitempty"`
}

// Aircraft is one catalog record as exposed over the API.
type Aircraft struct {
	ID          string `json:"id"`
	Model       string `json:"model"`
	Category    string `json:"category"`
	Fact        string `json:"fact,omitempty"`
	Role        string `json:"role,omitempty"`
	Engines     string `json:"engines,omitempty"`
	FirstFlight string `json:"first_flight,omitempty"`
}

// OutcomeView reports the result of one answered question. Answer carries
// the correct aircraft and its fact for the miss display.
type OutcomeView struct {
	Correct    bool     `json:"correct"`
	TimedOut   bool     `json:"timed_out"`
	Points     int      `json:"points"`
	Score      int      `json:"score"`
	Streak     int      `json:"streak"`
	BestStreak int      `json:"best_streak"`
	Answer     Aircraft `json:"answer"`
}

// SummaryView is the round-complete report.
type SummaryView struct {
	Score        int  `json:"score"`
	BestStreak   int  `json:"best_streak"`
	Questions    int  `json:"questions"`
	CorrectCount int  `json:"correct_count"`
	Accuracy     int  `json:"accuracy"`
	Qualifies    bool `json:"qualifies"`
}

// Entry is one leaderboard row.
type Entry struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// Placement reports where a submitted score landed.
type Placement struct {
	Qualified bool    `json:"qualified"`
	Position  int     `json:"position,omitempty"`
	Entries   []Entry `json:"entries"`
}
