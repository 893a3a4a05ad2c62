// Package prefetch warms the image caches ahead of gameplay.
//
// A bounded in-memory queue carries aircraft records to a pool of workers
// that resolve each record's image. Resolution fills both cache layers, so
// by the time a player meets the aircraft in a round the photo is a cache
// hit instead of a network round trip.
package prefetch

import (
	"context"
	"sync"

	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultQueueCapacity = 256
)

// Queue provides non-blocking enqueue and channel-based dequeue semantics
// for records awaiting image resolution.
type Queue struct {
	records  chan catalog.Record
	capacity int

	mu     sync.RWMutex
	closed bool
}

// NewQueue creates a bounded prefetch queue.
func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{
		capacity: defaultQueueCapacity,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.records = make(chan catalog.Record, q.capacity)

	metrics.UpdatePrefetchQueueDepth(0)
	return q
}

// Enqueue adds a record to the queue. Returns false when the queue is full
// or closed; prefetch is best effort, so callers drop and move on.
func (q *Queue) Enqueue(ctx context.Context, rec catalog.Record) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return false
	}

	select {
	case q.records <- rec:
		metrics.UpdatePrefetchQueueDepth(len(q.records))
		return true
	case <-ctx.Done():
		return false
	default:
		return false
	}
}

// Dequeue returns the channel workers consume from. The channel is closed
// when the queue is closed.
func (q *Queue) Dequeue() <-chan catalog.Record {
	return q.records
}

// Len returns the current number of queued records.
func (q *Queue) Len() int {
	return len(q.records)
}

// Close shuts the queue down. After closing, Enqueue returns false and the
// dequeue channel drains then closes.
func (q *Queue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	q.closed = true
	close(q.records)
	metrics.UpdatePrefetchQueueDepth(0)
	return nil
}

// IsClosed reports whether the queue has been closed.
func (q *Queue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
