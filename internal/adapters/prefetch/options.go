package prefetch

import "github.com/nahubn1/airplane-recognition-quiz/pkg/logger"

// QueueOption applies a configuration option to the Queue.
type QueueOption func(*Queue)

// WithCapacity sets the maximum number of records the queue holds.
func WithCapacity(capacity int) QueueOption {
	return func(q *Queue) {
		if capacity > 0 {
			q.capacity = capacity
		}
	}
}

// PoolOption applies a configuration option to the Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of resolution workers.
func WithWorkers(count int) PoolOption {
	return func(p *Pool) {
		if count > 0 {
			p.workerCount = count
		}
	}
}

// WithLogger sets a custom logger for the pool.
func WithLogger(log logger.Logger) PoolOption {
	return func(p *Pool) {
		if log != nil {
			p.logger = log
		}
	}
}
