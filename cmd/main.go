package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/http/api"
	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/http/docs"
	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/http/site"
	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/imagery"
	app "github.com/nahubn1/airplane-recognition-quiz/internal/app"
	"github.com/nahubn1/airplane-recognition-quiz/internal/config"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/logger"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 10 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	systemMetricsInterval     = 10 * time.Second
	nanosecondsPerMillisecond = 1e6
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics.
	// We collect our own custom system metrics instead.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			logger.Error(err)
		}
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	storePath := cfg.SQLitePath
	if cfg.StoreBackend == config.BackendFile {
		storePath = cfg.FileStoreDir
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithStoreBackend(cfg.StoreBackend, storePath),
		app.WithTimeLimit(time.Duration(cfg.QuestionTimeLimitSec)*time.Second),
		app.WithRoundLength(cfg.RoundLength, cfg.RoundLengthMin, cfg.RoundLengthMax),
		app.WithSessionTTL(time.Duration(cfg.SessionTTLSec)*time.Second),
		app.WithPrefetch(cfg.PrefetchQueueSize, cfg.PrefetchWorkers),
		app.WithImageryOptions(imageryOptions(cfg)...),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	go startSystemMetricsUpdater(ctx)

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// Embedded front end at /, API reference under /api-docs.
	site.Register(ctx, mux)
	docs.Register(ctx, mux)

	// Register business API routes with the service dependency.
	apiServer := api.NewServer(svc, svc, cfg.MaxLeaderboardLimit)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

func imageryOptions(cfg *config.Config) []imagery.Option {
	opts := []imagery.Option{
		imagery.WithTimeout(time.Duration(cfg.ImageTimeoutSec) * time.Second),
		imagery.WithHotCacheSize(cfg.ImageHotCacheBytes),
	}
	if cfg.ImageSummaryBase != "" || cfg.ImageMediaListBase != "" || cfg.ImageQueryBase != "" {
		opts = append(opts, imagery.WithBaseURLs(cfg.ImageSummaryBase, cfg.ImageMediaListBase, cfg.ImageQueryBase))
	}
	return opts
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
