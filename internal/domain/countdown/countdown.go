// Package countdown implements the per-question countdown timer.
//
// A Timer counts down from a fixed limit, reporting the remaining time on
// each tick and firing an expiry callback exactly once when it reaches zero.
// It is the server-side recast of a render-loop clock: ticking is driven by a
// time.Ticker goroutine, and a generation counter makes ticks from a replaced
// run harmless, so a stale timer can never expire a later question.
package countdown

import (
	"context"
	"sync"
	"time"
)

// Default timer configuration constants.
const (
	defaultTimeLimit    = 15 * time.Second
	defaultTickInterval = 100 * time.Millisecond
)

// State is the timer lifecycle state.
type State string

// Timer states.
const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateExpired State = "expired"
)

// Timer is a restartable countdown. All methods are safe for concurrent use.
//
// Callbacks are invoked from the tick goroutine without holding the timer
// lock, so they may call back into the Timer. A tick that has already decided
// to fire can race a concurrent Stop by at most one callback; callers that
// care gate expiry on their own state (the run controller ignores expiries
// for answered or replaced questions).
type Timer struct {
	mu       sync.Mutex
	state    State
	limit    time.Duration
	interval time.Duration
	startAt  time.Time
	// gen invalidates the tick goroutine of a superseded run.
	gen uint64

	now      func() time.Time
	onTick   func(remaining time.Duration)
	onExpire func()
}

// New creates an idle timer with the default limit; see Option.
func New(opts ...Option) *Timer {
	t := &Timer{
		state:    StateIdle,
		limit:    defaultTimeLimit,
		interval: defaultTickInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the current lifecycle state.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Limit returns the configured countdown duration.
func (t *Timer) Limit() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.limit
}

// Remaining returns the time left: the full limit when idle, zero when
// expired.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remainingLocked()
}

func (t *Timer) remainingLocked() time.Duration {
	switch t.state {
	case StateRunning:
		left := t.limit - t.now().Sub(t.startAt)
		if left < 0 {
			return 0
		}
		return left
	case StateExpired:
		return 0
	default:
		return t.limit
	}
}

// Start begins the countdown from idle or expired. Starting an already
// running timer restarts it, implicitly cancelling the previous run. The
// countdown also stops when ctx is cancelled (without firing expiry).
func (t *Timer) Start(ctx context.Context) {
	t.mu.Lock()
	t.state = StateRunning
	t.startAt = t.now()
	t.gen++
	gen := t.gen
	interval := t.interval
	t.mu.Unlock()

	go t.run(ctx, gen, interval)
}

// Stop cancels the countdown without firing expiry and returns to idle.
// Used when the user answers before the clock runs out.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.state = StateIdle
}

// Reset stops any pending ticks and returns to idle with a new limit.
// A non-positive limit keeps the current one. Called when a new question
// begins.
func (t *Timer) Reset(limit time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.state = StateIdle
	if limit > 0 {
		t.limit = limit
	}
}

// run is the tick loop for one countdown generation.
func (t *Timer) run(ctx context.Context, gen uint64, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			remaining, fire, live := t.tick(gen)
			if !live {
				return
			}
			if fire {
				if t.onExpire != nil {
					t.onExpire()
				}
				return
			}
			if t.onTick != nil {
				t.onTick(remaining)
			}
		}
	}
}

// tick advances one scheduling step. It reports the remaining time, whether
// expiry fires on this tick, and whether this generation is still live.
func (t *Timer) tick(gen uint64) (remaining time.Duration, fire, live bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.gen != gen || t.state != StateRunning {
		return 0, false, false
	}
	remaining = t.remainingLocked()
	if remaining <= 0 {
		t.state = StateExpired
		return 0, true, true
	}
	return remaining, false, true
}
