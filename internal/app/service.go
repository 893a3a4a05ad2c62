// Package service provides the core game service that implements the
// dependencies required by the HTTP API: round sessions, answer settlement,
// the leaderboard, and Learn-Mode catalog lookups.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/imagery"
	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/leaderboard"
	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/prefetch"
	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/store"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/question"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/round"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/types"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/logger"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultSessionTTL      = 30 * time.Minute
	defaultJanitorInterval = time.Minute
	defaultLengthMin       = 5
	defaultLengthMax       = 20
)

// Service implements the API dependencies for the quiz system.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog   *catalog.Catalog
	kv        store.KV
	resolver  question.Resolver
	generator *question.Generator
	board     *leaderboard.Board
	warmer    *prefetch.Pool

	// Configuration
	storeBackend  string
	sqlitePath    string
	fileStoreDir  string
	timeLimit     time.Duration
	defaultLength int
	lengthMin     int
	lengthMax     int
	sessionTTL    time.Duration
	imageryOpts   []imagery.Option
	prefetchSize  int
	prefetchPool  int

	// Session registry
	sessions map[string]*session

	// State
	started bool
	stopCh  chan struct{}
	wg      sync.WaitGroup

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		catalog:       catalog.Default(),
		storeBackend:  "sqlite",
		sqlitePath:    "skyquiz.db",
		fileStoreDir:  "data",
		timeLimit:     round.DefaultTimeLimit,
		defaultLength: round.DefaultLength,
		lengthMin:     defaultLengthMin,
		lengthMax:     defaultLengthMax,
		sessionTTL:    defaultSessionTTL,
		prefetchSize:  256,
		prefetchPool:  4,
		sessions:      make(map[string]*session),
		stopCh:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}

	s.logger.Info(ctx, "starting quiz service...")

	if s.kv == nil {
		kv, err := s.openStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		s.kv = kv
	}
	if s.resolver == nil {
		s.resolver = imagery.New(s.kv, s.imageryOpts...)
	}
	s.generator = question.New(s.resolver)
	s.board = leaderboard.New(s.kv)

	// Background image warm-up keeps Learn Mode and early questions off the
	// network path.
	queue := prefetch.NewQueue(prefetch.WithCapacity(s.prefetchSize))
	s.warmer = prefetch.NewPool(queue, s.resolver, prefetch.WithWorkers(s.prefetchPool))
	s.warmer.Start(ctx)
	warmed := s.warmer.Warm(ctx, s.catalog.All())

	s.wg.Add(1)
	go s.janitor()

	metrics.UpdateCatalogSize(s.catalog.Len())
	s.started = true
	s.logger.Info(ctx, "quiz service started",
		logger.String("backend", s.storeBackend),
		logger.Int("catalog", s.catalog.Len()),
		logger.Int("warming", warmed),
	)
	return nil
}

func (s *Service) openStore() (store.KV, error) {
	switch s.storeBackend {
	case "file":
		return store.NewFile(s.fileStoreDir)
	default:
		return store.NewSQLite(s.sqlitePath)
	}
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	s.mu.Unlock()

	ctx := context.Background()
	s.logger.Info(ctx, "stopping quiz service...")

	// Stop the janitor before touching the registry; it takes the same lock.
	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		sess.timer.Stop()
		delete(s.sessions, id)
	}
	metrics.UpdateActiveSessions(0)

	if s.warmer != nil {
		if err := s.warmer.Shutdown(ctx); err != nil {
			s.logger.Warn(ctx, "prefetch shutdown", logger.Error(err))
		}
	}
	if s.kv != nil {
		if err := s.kv.Close(); err != nil {
			s.logger.Warn(ctx, "store close", logger.Error(err))
		}
	}

	s.logger.Info(ctx, "quiz service stopped")
}

// janitor evicts sessions idle past the TTL.
func (s *Service) janitor() {
	defer s.wg.Done()

	ticker := time.NewTicker(defaultJanitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.evictIdle()
		}
	}
}

func (s *Service) evictIdle() {
	cutoff := time.Now().Add(-s.sessionTTL)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) {
			sess.timer.Stop()
			delete(s.sessions, id)
			metrics.RecordSessionExpired()
			s.logger.Debug(context.Background(), "session evicted", logger.String("round", id))
		}
	}
	metrics.UpdateActiveSessions(len(s.sessions))
}

// Leaderboard returns up to limit entries, highest score first.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]types.Entry, error) {
	entries, err := s.board.List(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	out := make([]types.Entry, len(entries))
	for i, e := range entries {
		out[i] = types.Entry{Name: e.Name, Score: e.Score, Date: e.Date}
	}
	return out, nil
}

// ResetLeaderboard clears the high score table.
func (s *Service) ResetLeaderboard(ctx context.Context) error {
	return s.board.Reset(ctx)
}

// Aircraft returns the Learn-Mode catalog listing, optionally filtered by
// category.
func (s *Service) Aircraft(_ context.Context, category string) ([]types.Aircraft, error) {
	records := s.catalog.All()
	if category != "" {
		cat, err := catalog.ParseCategory(category)
		if err != nil {
			return nil, err
		}
		records = s.catalog.Filter(cat)
	}
	out := make([]types.Aircraft, len(records))
	for i, rec := range records {
		out[i] = aircraftView(rec)
	}
	return out, nil
}

// AircraftImage resolves the image URL for one catalog record.
func (s *Service) AircraftImage(ctx context.Context, id string) (string, error) {
	rec, ok := s.catalog.ByID(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownAircraft, id)
	}
	return s.resolver.Resolve(ctx, rec), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":        s.started,
		"catalogSize":    s.catalog.Len(),
		"activeSessions": len(s.sessions),
		"storeBackend":   s.storeBackend,
		"timeLimitSec":   s.timeLimit.Seconds(),
	}
	metrics.UpdateActiveSessions(len(s.sessions))
	return stats
}

func aircraftView(rec catalog.Record) types.Aircraft {
	return types.Aircraft{
		ID:          rec.ID,
		Model:       rec.Model,
		Category:    string(rec.Category),
		Fact:        rec.Fact,
		Role:        rec.Spec.Role,
		Engines:     rec.Spec.Engines,
		FirstFlight: rec.Spec.FirstFlight,
	}
}
