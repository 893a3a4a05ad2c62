package question

import "math/rand"

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithRand injects a rand source, mainly for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithImageRetries bounds the duplicate-photo retry loop.
func WithImageRetries(n int) Option {
	return func(g *Generator) {
		if n >= 0 {
			g.retries = n
		}
	}
}
