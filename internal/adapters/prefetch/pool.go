package prefetch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/logger"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/metrics"
)

// Default pool configuration constants.
const (
	defaultWorkerCount  = 4
	poolShutdownTimeout = 10 * time.Second
)

// Resolver resolves a record to an image URL, filling the caches as a side
// effect. The return value is discarded here; warming is the point.
type Resolver interface {
	Resolve(ctx context.Context, rec catalog.Record) string
}

// Pool runs a fixed set of workers draining the queue through a Resolver.
type Pool struct {
	queue       *Queue
	resolver    Resolver
	workerCount int

	shutdown chan struct{}
	wg       sync.WaitGroup

	logger logger.Logger
}

// NewPool creates a worker pool over the given queue and resolver.
func NewPool(queue *Queue, resolver Resolver, opts ...PoolOption) *Pool {
	p := &Pool{
		queue:       queue,
		resolver:    resolver,
		workerCount: defaultWorkerCount,
		shutdown:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.Named("prefetch")
	}
	return p
}

// Start launches all workers.
func (p *Pool) Start(ctx context.Context) {
	metrics.UpdatePrefetchWorkerCount(p.workerCount)
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.run(ctx, i)
	}
}

// run is one worker loop. It exits when the queue closes, the pool shuts
// down, or the context is canceled.
func (p *Pool) run(ctx context.Context, id int) {
	defer p.wg.Done()

	records := p.queue.Dequeue()
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.shutdown:
			return
		case rec, ok := <-records:
			if !ok {
				return
			}
			_ = p.resolver.Resolve(ctx, rec)
			metrics.UpdatePrefetchQueueDepth(p.queue.Len())
			p.logger.Debug(ctx, "image warmed",
				logger.String("aircraft", rec.ID),
				logger.Int("worker", id),
			)
		}
	}
}

// Warm enqueues every record for background resolution. Records that do not
// fit in the queue are skipped; the count of accepted records is returned.
func (p *Pool) Warm(ctx context.Context, records []catalog.Record) int {
	accepted := 0
	for _, rec := range records {
		if p.queue.Enqueue(ctx, rec) {
			accepted++
		}
	}
	return accepted
}

// Shutdown closes the queue, lets workers drain it, and waits for them to
// exit or the timeout to pass.
func (p *Pool) Shutdown(ctx context.Context) error {
	if err := p.queue.Close(); err != nil && err != ErrClosed {
		p.logger.Error(ctx, "error closing prefetch queue", logger.Error(err))
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	select {
	case <-done:
		metrics.UpdatePrefetchWorkerCount(0)
		return nil
	case <-shutdownCtx.Done():
		close(p.shutdown)
		return fmt.Errorf("prefetch shutdown timed out: %w", shutdownCtx.Err())
	}
}
