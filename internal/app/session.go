package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/countdown"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/round"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/types"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/metrics"
)

// session is one player's round: the controller, the live countdown, and
// the bookkeeping the janitor needs. The mutex serializes user actions
// against timer expiries.
type session struct {
	mu         sync.Mutex
	id         string
	controller *round.Controller
	timer      *countdown.Timer
	// qGen counts armed questions; an expiry carrying a stale generation
	// is discarded without touching the controller.
	qGen       uint64
	lastActive time.Time
	scoreSaved bool
}

func (sess *session) touch() {
	sess.lastActive = time.Now()
}

func (sess *session) idleSince() time.Time {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.lastActive
}

// StartRound creates a new session and generates its first question.
// Categories filter the catalog; a zero length takes the default, anything
// else must fall inside the configured bounds.
func (s *Service) StartRound(ctx context.Context, categories []string, length int) (types.RoundView, error) {
	if length == 0 {
		length = s.defaultLength
	}
	if length < s.lengthMin || length > s.lengthMax {
		return types.RoundView{}, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrInvalidLength, length, s.lengthMin, s.lengthMax)
	}

	cats := make([]catalog.Category, 0, len(categories))
	for _, raw := range categories {
		cat, err := catalog.ParseCategory(raw)
		if err != nil {
			return types.RoundView{}, err
		}
		cats = append(cats, cat)
	}

	controller := round.NewController(s.generator, s.catalog)
	cfg := round.Config{
		Categories: cats,
		Length:     length,
		TimeLimit:  s.timeLimit,
	}
	if err := controller.StartRound(ctx, cfg); err != nil {
		return types.RoundView{}, err
	}

	sess := &session{
		id:         uuid.NewString(),
		controller: controller,
	}
	sess.mu.Lock()
	sess.touch()
	s.armQuestion(sess)
	view := s.roundViewLocked(sess)
	sess.mu.Unlock()

	s.mu.Lock()
	s.sessions[sess.id] = sess
	count := len(s.sessions)
	s.mu.Unlock()

	metrics.RecordRoundStarted()
	metrics.RecordQuestionGenerated()
	metrics.UpdateActiveSessions(count)
	return view, nil
}

// GetRound returns the current view of a session.
func (s *Service) GetRound(_ context.Context, id string) (types.RoundView, error) {
	sess, err := s.session(id)
	if err != nil {
		return types.RoundView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()
	return s.roundViewLocked(sess), nil
}

// SubmitAnswer settles the current question with the player's pick. The
// time remaining is read from the server-side countdown, never trusted from
// the client.
func (s *Service) SubmitAnswer(_ context.Context, id, optionID string) (types.OutcomeView, error) {
	sess, err := s.session(id)
	if err != nil {
		return types.OutcomeView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()

	remaining := sess.timer.Remaining()
	outcome, err := sess.controller.SubmitAnswer(optionID, remaining)
	if err != nil {
		return types.OutcomeView{}, err
	}
	sess.timer.Stop()

	if outcome.Correct {
		metrics.RecordAnswer("correct")
	} else {
		metrics.RecordAnswer("incorrect")
	}
	metrics.RecordQuestionPoints(float64(outcome.Points))
	return outcomeView(outcome), nil
}

// Advance moves the session to its next question, or to the round-complete
// summary after the last one.
func (s *Service) Advance(ctx context.Context, id string) (types.RoundView, error) {
	sess, err := s.session(id)
	if err != nil {
		return types.RoundView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()

	if err := sess.controller.Advance(ctx); err != nil {
		return types.RoundView{}, err
	}

	switch sess.controller.State() {
	case round.StateInRound:
		s.armQuestion(sess)
		metrics.RecordQuestionGenerated()
	case round.StateRoundComplete:
		sess.timer.Stop()
		summary := sess.controller.Summary()
		metrics.RecordRoundCompleted()
		metrics.RecordRoundScore(float64(summary.Score))
	}
	return s.roundViewLocked(sess), nil
}

// SaveScore submits a completed round's score to the leaderboard. One save
// per round; repeats are rejected.
func (s *Service) SaveScore(ctx context.Context, id, name string) (types.Placement, error) {
	sess, err := s.session(id)
	if err != nil {
		return types.Placement{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()

	if sess.controller.State() != round.StateRoundComplete {
		return types.Placement{}, ErrRoundNotComplete
	}
	if sess.scoreSaved {
		return types.Placement{}, ErrScoreSaved
	}

	summary := sess.controller.Summary()
	result, err := s.board.Submit(ctx, name, summary.Score)
	if err != nil {
		return types.Placement{}, err
	}
	sess.scoreSaved = true

	entries := make([]types.Entry, len(result.Entries))
	for i, e := range result.Entries {
		entries[i] = types.Entry{Name: e.Name, Score: e.Score, Date: e.Date}
	}
	return types.Placement{
		Qualified: result.Qualified,
		Position:  result.Position,
		Entries:   entries,
	}, nil
}

func (s *Service) session(id string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	return sess, nil
}

// armQuestion replaces the session countdown for a freshly generated
// question. Caller holds sess.mu.
func (s *Service) armQuestion(sess *session) {
	sess.qGen++
	gen := sess.qGen

	if sess.timer != nil {
		sess.timer.Stop()
	}
	sess.timer = countdown.New(
		countdown.WithLimit(s.timeLimit),
		countdown.WithOnExpire(func() {
			s.expireQuestion(sess, gen)
		}),
	)
	sess.timer.Start(context.Background())
}

// expireQuestion settles a question as timed out, unless the question has
// been answered or replaced since the countdown was armed.
func (s *Service) expireQuestion(sess *session, gen uint64) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.qGen != gen {
		return
	}
	outcome, err := sess.controller.ExpireAnswer()
	if err != nil {
		return
	}
	metrics.RecordCountdownExpiry()
	metrics.RecordAnswer("timeout")
	metrics.RecordQuestionPoints(float64(outcome.Points))
}

// roundViewLocked builds the API view of a session. Caller holds sess.mu.
func (s *Service) roundViewLocked(sess *session) types.RoundView {
	score, streak, best := sess.controller.Score()
	view := types.RoundView{
		RoundID:    sess.id,
		State:      string(sess.controller.State()),
		Score:      score,
		Streak:     streak,
		BestStreak: best,
	}

	switch sess.controller.State() {
	case round.StateInRound:
		q, _ := sess.controller.Current()
		index, total := sess.controller.Progress()
		options := make([]types.Option, len(q.Options))
		for i, rec := range q.Options {
			options[i] = types.Option{ID: rec.ID, Model: rec.Model}
		}
		view.Question = &types.QuestionView{
			Index:            index + 1,
			Total:            total,
			ImageURL:         q.ImageURL,
			Options:          options,
			TimeLimitSec:     sess.controller.TimeLimit().Seconds(),
			TimeRemainingSec: sess.timer.Remaining().Seconds(),
		}
	case round.StateRoundComplete:
		summary := sess.controller.Summary()
		qualifies, err := s.board.Qualifies(context.Background(), summary.Score)
		if err != nil {
			qualifies = false
		}
		view.Summary = &types.SummaryView{
			Score:        summary.Score,
			BestStreak:   summary.BestStreak,
			Questions:    summary.Questions,
			CorrectCount: summary.CorrectCount,
			Accuracy:     summary.Accuracy,
			Qualifies:    qualifies && !sess.scoreSaved,
		}
	}
	return view
}

func outcomeView(outcome round.Outcome) types.OutcomeView {
	return types.OutcomeView{
		Correct:    outcome.Correct,
		TimedOut:   outcome.TimedOut,
		Points:     outcome.Points,
		Score:      outcome.Score,
		Streak:     outcome.Streak,
		BestStreak: outcome.BestStreak,
		Answer:     aircraftView(outcome.Answer),
	}
}
