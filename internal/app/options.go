package service

import (
	"time"

	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/imagery"
	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/store"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/question"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStoreBackend selects the persistence backend and its location.
// Backend is "sqlite" or "file"; path is the database file or directory.
func WithStoreBackend(backend, path string) Option {
	return func(s *Service) {
		switch backend {
		case "file":
			s.storeBackend = backend
			if path != "" {
				s.fileStoreDir = path
			}
		case "sqlite":
			s.storeBackend = backend
			if path != "" {
				s.sqlitePath = path
			}
		}
	}
}

// WithStore injects an already open store, bypassing WithStoreBackend.
// The service takes ownership and closes it on Stop.
func WithStore(kv store.KV) Option {
	return func(s *Service) {
		if kv != nil {
			s.kv = kv
		}
	}
}

// WithCatalog replaces the built-in aircraft catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(s *Service) {
		if cat != nil {
			s.catalog = cat
		}
	}
}

// WithResolver injects an image resolver, mainly for tests.
func WithResolver(resolver question.Resolver) Option {
	return func(s *Service) {
		if resolver != nil {
			s.resolver = resolver
		}
	}
}

// WithImageryOptions forwards options to the default image resolver. Ignored
// when WithResolver is used.
func WithImageryOptions(opts ...imagery.Option) Option {
	return func(s *Service) {
		s.imageryOpts = append(s.imageryOpts, opts...)
	}
}

// WithTimeLimit sets the per-question countdown duration.
func WithTimeLimit(limit time.Duration) Option {
	return func(s *Service) {
		if limit > 0 {
			s.timeLimit = limit
		}
	}
}

// WithRoundLength sets the default question count and its accepted bounds.
func WithRoundLength(def, min, max int) Option {
	return func(s *Service) {
		if min > 0 && max >= min && def >= min && def <= max {
			s.defaultLength = def
			s.lengthMin = min
			s.lengthMax = max
		}
	}
}

// WithSessionTTL sets how long an idle round survives before eviction.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithPrefetch sizes the image warm-up queue and worker pool.
func WithPrefetch(queueSize, workers int) Option {
	return func(s *Service) {
		if queueSize > 0 {
			s.prefetchSize = queueSize
		}
		if workers > 0 {
			s.prefetchPool = workers
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}
