package quizprobe

import (
	"context"
	"fmt"
	"time"

	"github.com/nahubn1/airplane-recognition-quiz/pkg/logger"
)

// Run executes the complete round probe.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting skyquiz round probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("rounds", config.Rounds),
		logger.Int("length", config.Length),
		logger.Any("categories", config.Categories),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Int("topN", config.TopN),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Play rounds concurrently
	results, err := playRounds(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("round playing failed: %w", err)
	}
	for _, r := range results {
		if r.Saved {
			stats.ScoresSaved++
		}
	}

	// Step 3: Let saves settle before reading the board back
	logger.Get().Info(ctx, "waiting for scores to settle")
	time.Sleep(SettleDelay)

	// Step 4: Get leaderboard
	leaderboard, err := getLeaderboard(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("leaderboard retrieval failed: %w", err)
	}

	// Step 5: Verify results
	if err := verifyResults(config, results, leaderboard); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "probe completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// displayFinalStats prints the final probe statistics.
func displayFinalStats(stats *Stats) {
	var accuracy, roundsPerSecond float64

	if stats.QuestionsAnswered > 0 {
		accuracy = float64(stats.CorrectAnswers) / float64(stats.QuestionsAnswered) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		roundsPerSecond = float64(stats.RoundsPlayed) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("roundsPlayed", stats.RoundsPlayed),
		logger.Int("roundsFailed", stats.RoundsFailed),
		logger.Int("questionsAnswered", stats.QuestionsAnswered),
		logger.Int("correctAnswers", stats.CorrectAnswers),
		logger.Int("scoresSaved", stats.ScoresSaved),
		logger.Int("leaderboardEntries", stats.LeaderboardEntries),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("accuracy", accuracy),
		logger.Float64("roundsPerSecond", roundsPerSecond))
}
