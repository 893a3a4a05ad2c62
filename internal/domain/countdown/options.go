package countdown

import "time"

// Option applies a configuration option to the Timer.
type Option func(*Timer)

// WithLimit sets the countdown duration.
func WithLimit(limit time.Duration) Option {
	return func(t *Timer) {
		if limit > 0 {
			t.limit = limit
		}
	}
}

// WithInterval sets the tick interval.
func WithInterval(interval time.Duration) Option {
	return func(t *Timer) {
		if interval > 0 {
			t.interval = interval
		}
	}
}

// WithClock injects a clock function, mainly for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		if now != nil {
			t.now = now
		}
	}
}

// WithOnTick sets the per-tick callback, invoked with the remaining time.
func WithOnTick(fn func(remaining time.Duration)) Option {
	return func(t *Timer) {
		t.onTick = fn
	}
}

// WithOnExpire sets the expiry callback, invoked exactly once per countdown
// that runs to zero.
func WithOnExpire(fn func()) Option {
	return func(t *Timer) {
		t.onExpire = fn
	}
}
