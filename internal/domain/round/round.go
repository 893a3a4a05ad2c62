// Package round owns the state of one play-through and the transitions on it.
package round

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/question"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/scoring"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/seen"
)

// Round configuration constants.
const (
	DefaultLength    = 10
	DefaultTimeLimit = 15 * time.Second
)

// State is the controller lifecycle state.
type State string

// Controller states.
const (
	StateMenu          State = "menu"
	StateInRound       State = "in_round"
	StateRoundComplete State = "round_complete"
)

// Config describes one round. Zero values fall back to defaults; the HTTP
// layer applies the user-facing bounds before this point.
type Config struct {
	// Categories enables a subset of the catalog; empty means all four.
	Categories []catalog.Category
	// Length is the number of questions in the round.
	Length int
	// TimeLimit is the per-question countdown duration.
	TimeLimit time.Duration
}

func (c *Config) applyDefaults() {
	if c.Length <= 0 {
		c.Length = DefaultLength
	}
	if c.TimeLimit <= 0 {
		c.TimeLimit = DefaultTimeLimit
	}
}

// Outcome reports the result of answering one question.
type Outcome struct {
	Correct  bool
	TimedOut bool
	Points   int
	// Aggregates after applying this answer.
	Score      int
	Streak     int
	BestStreak int
	// Answer is the correct record, for the miss display and fact.
	Answer catalog.Record
}

// Summary is the round-complete report.
type Summary struct {
	Score        int
	BestStreak   int
	Questions    int
	CorrectCount int
	// Accuracy is the correct fraction in percent, rounded down.
	Accuracy int
}

// run is the mutable state of one play-through.
type run struct {
	score        int
	streak       int
	bestStreak   int
	questionIdx  int
	correctCount int
	seenIDs      *seen.Set
	seenURLs     *seen.Set
	current      question.Question
	answered     bool
	lastOutcome  Outcome
}

// Controller orchestrates a sequence of questions over a filtered catalog
// pool. Methods are safe for concurrent use; the app layer additionally
// serializes per-session access so timer expiries and user answers cannot
// interleave mid-transition.
type Controller struct {
	gen     *question.Generator
	catalog *catalog.Catalog

	mu    sync.Mutex
	state State
	cfg   Config
	pool  []catalog.Record
	run   run
}

// NewController creates a Controller in the menu state.
func NewController(gen *question.Generator, cat *catalog.Catalog) *Controller {
	return &Controller{
		gen:     gen,
		catalog: cat,
		state:   StateMenu,
	}
}

// StartRound validates the configuration, resets the run state, and
// generates the first question. Fewer than four eligible aircraft after
// category filtering is a configuration error; the round never starts in a
// state where a valid question cannot be formed.
func (c *Controller) StartRound(ctx context.Context, cfg Config) error {
	cfg.applyDefaults()
	for _, cat := range cfg.Categories {
		if !cat.Valid() {
			return fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, cat)
		}
	}

	pool := c.catalog.Filter(cfg.Categories...)
	if len(pool) < question.OptionCount {
		return fmt.Errorf("%w: %d eligible after filtering, need %d",
			ErrNotEnoughAircraft, len(pool), question.OptionCount)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cfg = cfg
	c.pool = pool
	c.run = run{seenIDs: seen.NewSet(), seenURLs: seen.NewSet()}

	q, err := c.gen.Next(ctx, c.pool, c.run.seenIDs, c.run.seenURLs)
	if err != nil {
		c.state = StateMenu
		return fmt.Errorf("generate first question: %w", err)
	}
	c.run.current = q
	c.state = StateInRound
	return nil
}

// SubmitAnswer scores the selected option against the current question.
// Valid only in-round with an unanswered question; a second submission is
// rejected rather than rescored.
func (c *Controller) SubmitAnswer(optionID string, timeRemaining time.Duration) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateInRound {
		return Outcome{}, ErrNoActiveRound
	}
	if c.run.answered {
		return Outcome{}, ErrAlreadyAnswered
	}

	correct := optionID == c.run.current.Correct.ID
	return c.settleLocked(correct, false, timeRemaining), nil
}

// ExpireAnswer settles the current question as a timeout. Fired by the
// countdown; an expiry arriving after the question was answered is a no-op
// error, never a state change.
func (c *Controller) ExpireAnswer() (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateInRound {
		return Outcome{}, ErrNoActiveRound
	}
	if c.run.answered {
		return Outcome{}, ErrAlreadyAnswered
	}

	return c.settleLocked(false, true, 0), nil
}

// settleLocked applies scoring and streak updates for one answered question.
// Caller holds c.mu.
func (c *Controller) settleLocked(correct, timedOut bool, timeRemaining time.Duration) Outcome {
	points := scoring.Points(correct, timeRemaining.Seconds(), c.cfg.TimeLimit.Seconds(), c.run.streak)

	c.run.score += points
	c.run.streak = scoring.NextStreak(correct, c.run.streak)
	c.run.bestStreak = scoring.BestStreak(c.run.bestStreak, c.run.streak)
	if correct {
		c.run.correctCount++
	}
	c.run.answered = true

	c.run.lastOutcome = Outcome{
		Correct:    correct,
		TimedOut:   timedOut,
		Points:     points,
		Score:      c.run.score,
		Streak:     c.run.streak,
		BestStreak: c.run.bestStreak,
		Answer:     c.run.current.Correct,
	}
	return c.run.lastOutcome
}

// Advance moves to the next question, or completes the round when the
// configured length is reached. Valid only after the current question was
// answered or expired.
func (c *Controller) Advance(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateRoundComplete:
		return ErrRoundComplete
	case StateInRound:
	default:
		return ErrNoActiveRound
	}
	if !c.run.answered {
		return ErrAnswerPending
	}

	c.run.questionIdx++
	if c.run.questionIdx >= c.cfg.Length {
		c.state = StateRoundComplete
		return nil
	}

	q, err := c.gen.Next(ctx, c.pool, c.run.seenIDs, c.run.seenURLs)
	if err != nil {
		return fmt.Errorf("generate next question: %w", err)
	}
	c.run.current = q
	c.run.answered = false
	return nil
}

// State returns the controller lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current returns the active question and whether it is still unanswered.
func (c *Controller) Current() (question.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.run.current, c.state == StateInRound && !c.run.answered
}

// LastOutcome returns the outcome of the most recently settled question.
func (c *Controller) LastOutcome() (Outcome, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.run.lastOutcome, c.run.answered || c.state == StateRoundComplete
}

// Progress reports the zero-based question index and the round length.
func (c *Controller) Progress() (index, length int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.run.questionIdx, c.cfg.Length
}

// Score returns the aggregate score, streak, and best streak.
func (c *Controller) Score() (score, streak, best int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.run.score, c.run.streak, c.run.bestStreak
}

// Answered reports whether the current question has been settled.
func (c *Controller) Answered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.run.answered
}

// TimeLimit returns the per-question countdown duration for this round.
func (c *Controller) TimeLimit() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := c.cfg
	cfg.applyDefaults()
	return cfg.TimeLimit
}

// Summary reports the final aggregates for a completed (or in-flight) round.
func (c *Controller) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	answered := c.run.questionIdx
	if c.state == StateInRound && c.run.answered {
		answered++
	}
	accuracy := 0
	if answered > 0 {
		accuracy = c.run.correctCount * 100 / answered
	}
	return Summary{
		Score:        c.run.score,
		BestStreak:   c.run.bestStreak,
		Questions:    c.cfg.Length,
		CorrectCount: c.run.correctCount,
		Accuracy:     accuracy,
	}
}
