// Package question generates multiple-choice questions from the catalog.
package question

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/seen"
)

// Generator configuration constants.
const (
	// OptionCount is the fixed number of answer options per question.
	OptionCount = 4
	// defaultImageRetries bounds the retry-on-duplicate-photo loop. The
	// de-dup is best effort: after the retries run out a repeat photo is
	// shown rather than failing the question.
	defaultImageRetries = 4
)

// Resolver produces a displayable image URL for a record. It never fails;
// the imagery adapter falls back to a synthesized placeholder.
type Resolver interface {
	Resolve(ctx context.Context, rec catalog.Record) string
}

// Question is one round step: four distinct options, the correct answer
// among them at a random position, and a settled image URL.
type Question struct {
	Correct  catalog.Record
	Options  []catalog.Record
	ImageURL string
}

// Generator builds questions. Safe for concurrent use; the shared rand
// source is guarded.
type Generator struct {
	resolver Resolver

	mu      sync.Mutex
	rng     *rand.Rand
	retries int
}

// New creates a Generator backed by the given image resolver.
func New(resolver Resolver, opts ...Option) *Generator {
	g := &Generator{
		resolver: resolver,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // shuffle quality, not crypto
		retries:  defaultImageRetries,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next picks a correct answer from pool (skipping aircraft already used this
// run), resolves its photo, samples three distractors, and shuffles the four
// options. When the photo was already shown this run, up to four alternate
// aircraft are tried before accepting the repeat; the de-dup is best effort,
// never a hard guarantee.
//
// Exhausted seen-sets reset rather than fail: when every pool aircraft has
// been a correct answer already, the whole pool becomes eligible again and
// the round continues.
func (g *Generator) Next(ctx context.Context, pool []catalog.Record, seenIDs, seenURLs *seen.Set) (Question, error) {
	if len(pool) < OptionCount {
		return Question{}, fmt.Errorf("%w: %d eligible aircraft, need %d", ErrPoolTooSmall, len(pool), OptionCount)
	}

	candidates := unseen(pool, seenIDs)
	if len(candidates) == 0 {
		seenIDs.Reset()
		candidates = pool
	}

	correct := g.pick(candidates)
	url := g.resolver.Resolve(ctx, correct)

	// Best-effort photo de-dup: swap in an alternate aircraft whose photo
	// has not been shown yet. Gives up silently after the retry budget.
	for attempt := 0; attempt < g.retries && seenURLs.Seen(url); attempt++ {
		alt := g.pick(candidates)
		if alt.ID == correct.ID {
			continue
		}
		altURL := g.resolver.Resolve(ctx, alt)
		if !seenURLs.Seen(altURL) {
			correct, url = alt, altURL
		}
	}

	options := g.buildOptions(pool, correct)

	seenIDs.Record(correct.ID)
	seenURLs.Record(url)

	return Question{Correct: correct, Options: options, ImageURL: url}, nil
}

// pick selects one record uniformly.
func (g *Generator) pick(pool []catalog.Record) catalog.Record {
	g.mu.Lock()
	defer g.mu.Unlock()
	return pool[g.rng.Intn(len(pool))]
}

// buildOptions samples three distractors and shuffles all four options.
func (g *Generator) buildOptions(pool []catalog.Record, correct catalog.Record) []catalog.Record {
	g.mu.Lock()
	defer g.mu.Unlock()

	distractors := make([]catalog.Record, 0, len(pool)-1)
	for _, r := range pool {
		if r.ID != correct.ID {
			distractors = append(distractors, r)
		}
	}
	g.rng.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})

	options := append([]catalog.Record{correct}, distractors[:OptionCount-1]...)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// unseen filters pool down to records not yet used as a correct answer.
func unseen(pool []catalog.Record, seenIDs *seen.Set) []catalog.Record {
	var out []catalog.Record
	for _, r := range pool {
		if !seenIDs.Seen(r.ID) {
			out = append(out, r)
		}
	}
	return out
}
