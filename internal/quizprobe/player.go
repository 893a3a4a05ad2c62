package quizprobe

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/types"
)

// playRounds plays rounds concurrently using a worker pool.
func playRounds(ctx context.Context, config *Config, stats *Stats) ([]RoundResult, error) {
	log.Printf("🎮 Playing %d rounds with %d workers...", config.Rounds, config.Workers)

	client := newHTTPClient(config.Timeout)

	results := make([]RoundResult, config.Rounds)
	var (
		played    int64
		failed    int64
		questions int64
		correct   int64
	)

	// Progress reporting
	var lastReport time.Time
	reportInterval := 1 * time.Second

	// Create worker pool
	roundChan := make(chan int, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for index := range roundChan {
				select {
				case <-ctx.Done():
					return
				default:
					result, err := playSingleRound(ctx, client, config, index)

					if err != nil {
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							log.Printf("⚠️  Round %d failed: %v", index, err)
						}
					} else {
						results[index] = result
						atomic.AddInt64(&played, 1)
						atomic.AddInt64(&questions, int64(result.Questions))
						atomic.AddInt64(&correct, int64(result.Correct))
					}

					// Progress reporting
					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						done := atomic.LoadInt64(&played) + atomic.LoadInt64(&failed)
						ok := atomic.LoadInt64(&played)
						fail := atomic.LoadInt64(&failed)

						if config.Verbose {
							log.Printf("📊 Progress: %d/%d rounds (completed: %d, failed: %d)",
								done, config.Rounds, ok, fail)
						} else {
							fmt.Printf("\r🎮 Rounds: %d/%d (completed: %d, failed: %d)",
								done, config.Rounds, ok, fail)
						}
					}
				}
			}
		}(i)
	}

	// Send round indices to workers
	go func() {
		defer close(roundChan)
		for i := 0; i < config.Rounds; i++ {
			select {
			case <-ctx.Done():
				return
			case roundChan <- i:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Final progress report
	if !config.Verbose {
		fmt.Println() // New line after progress indicator
	}

	// Filter out failed rounds
	completed := make([]RoundResult, 0, len(results))
	for _, r := range results {
		if r.RoundID != "" {
			completed = append(completed, r)
		}
	}

	// Update stats
	stats.RoundsPlayed = len(completed)
	stats.RoundsFailed = int(atomic.LoadInt64(&failed))
	stats.QuestionsAnswered = int(atomic.LoadInt64(&questions))
	stats.CorrectAnswers = int(atomic.LoadInt64(&correct))

	log.Printf(`✅ Round playing completed:
   Completed: %d
   Failed: %d
   Questions answered: %d
   Correct answers: %d
`, stats.RoundsPlayed, stats.RoundsFailed, stats.QuestionsAnswered, stats.CorrectAnswers)

	return completed, nil
}

// playSingleRound plays one full round: start, answer every question with a
// random option, advance, and cross-check the final summary against the
// outcomes seen along the way.
func playSingleRound(ctx context.Context, client *HTTPClient, config *Config, index int) (RoundResult, error) {
	view, err := startRound(ctx, client, config)
	if err != nil {
		return RoundResult{}, err
	}

	result := RoundResult{RoundID: view.RoundID}
	runningScore := 0

	for view.State == types.StateInRound {
		if view.Question == nil {
			return RoundResult{}, fmt.Errorf("round %s in play without a question", view.RoundID)
		}
		if len(view.Question.Options) == 0 {
			return RoundResult{}, fmt.Errorf("round %s question %d has no options", view.RoundID, view.Question.Index)
		}

		pick := view.Question.Options[rand.IntN(len(view.Question.Options))]
		outcome, err := submitAnswer(ctx, client, config, view.RoundID, pick.ID)
		if err != nil {
			return RoundResult{}, fmt.Errorf("answer question %d: %w", view.Question.Index, err)
		}

		result.Questions++
		if outcome.Correct {
			result.Correct++
			if outcome.Points <= 0 {
				return RoundResult{}, fmt.Errorf("correct answer awarded %d points", outcome.Points)
			}
		} else if outcome.Points != 0 {
			return RoundResult{}, fmt.Errorf("wrong answer awarded %d points", outcome.Points)
		}
		runningScore += outcome.Points
		if outcome.Score != runningScore {
			return RoundResult{}, fmt.Errorf("score drifted: outcome says %d, accumulated %d", outcome.Score, runningScore)
		}

		view, err = advanceRound(ctx, client, config, view.RoundID)
		if err != nil {
			return RoundResult{}, fmt.Errorf("advance after question %d: %w", result.Questions, err)
		}
	}

	if view.Summary == nil {
		return RoundResult{}, fmt.Errorf("round %s ended without a summary", view.RoundID)
	}
	if view.Summary.Score != runningScore {
		return RoundResult{}, fmt.Errorf("summary score %d does not match accumulated %d", view.Summary.Score, runningScore)
	}
	if view.Summary.Questions != result.Questions {
		return RoundResult{}, fmt.Errorf("summary counts %d questions, played %d", view.Summary.Questions, result.Questions)
	}

	result.Score = view.Summary.Score
	result.BestStreak = view.Summary.BestStreak

	// Save qualifying scores under a per-round pilot name so the
	// leaderboard check can find them later.
	if view.Summary.Qualifies {
		name := fmt.Sprintf("probe-%03d", index)
		if err := saveScore(ctx, client, config, view.RoundID, name); err != nil {
			return RoundResult{}, fmt.Errorf("save score: %w", err)
		}
		result.Saved = true
		result.SavedName = name
	}

	return result, nil
}

func startRound(ctx context.Context, client *HTTPClient, config *Config) (types.RoundView, error) {
	body := map[string]interface{}{}
	if len(config.Categories) > 0 {
		body["categories"] = config.Categories
	}
	if config.Length > 0 {
		body["length"] = config.Length
	}

	resp, err := client.Post(ctx, config.BaseURL+"/rounds", body)
	if err != nil {
		return types.RoundView{}, fmt.Errorf("request failed: %w", err)
	}
	data, err := readResponseBody(resp)
	if err != nil {
		return types.RoundView{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != StatusCreated {
		return types.RoundView{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(data))
	}

	var view types.RoundView
	if err := unmarshalJSON(data, &view); err != nil {
		return types.RoundView{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return view, nil
}

func submitAnswer(ctx context.Context, client *HTTPClient, config *Config, roundID, optionID string) (types.OutcomeView, error) {
	url := fmt.Sprintf("%s/rounds/%s/answer", config.BaseURL, roundID)

	resp, err := client.Post(ctx, url, map[string]string{"option_id": optionID})
	if err != nil {
		return types.OutcomeView{}, fmt.Errorf("request failed: %w", err)
	}
	data, err := readResponseBody(resp)
	if err != nil {
		return types.OutcomeView{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return types.OutcomeView{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(data))
	}

	var outcome types.OutcomeView
	if err := unmarshalJSON(data, &outcome); err != nil {
		return types.OutcomeView{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return outcome, nil
}

func advanceRound(ctx context.Context, client *HTTPClient, config *Config, roundID string) (types.RoundView, error) {
	url := fmt.Sprintf("%s/rounds/%s/advance", config.BaseURL, roundID)

	resp, err := client.Post(ctx, url, nil)
	if err != nil {
		return types.RoundView{}, fmt.Errorf("request failed: %w", err)
	}
	data, err := readResponseBody(resp)
	if err != nil {
		return types.RoundView{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return types.RoundView{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(data))
	}

	var view types.RoundView
	if err := unmarshalJSON(data, &view); err != nil {
		return types.RoundView{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return view, nil
}

func saveScore(ctx context.Context, client *HTTPClient, config *Config, roundID, name string) error {
	url := fmt.Sprintf("%s/rounds/%s/score", config.BaseURL, roundID)

	resp, err := client.Post(ctx, url, map[string]string{"name": name})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	data, err := readResponseBody(resp)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(data))
	}
	return nil
}

// getLeaderboard retrieves the top N leaderboard entries.
func getLeaderboard(ctx context.Context, config *Config, stats *Stats) ([]types.Entry, error) {
	log.Printf("🥇 Getting top %d leaderboard entries...", config.TopN)

	client := newHTTPClient(config.Timeout)
	url := fmt.Sprintf("%s/leaderboard?limit=%d", config.BaseURL, config.TopN)

	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	data, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(data))
	}

	var leaderboard []types.Entry
	if err := unmarshalJSON(data, &leaderboard); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	stats.LeaderboardEntries = len(leaderboard)
	log.Printf("✅ Retrieved %d leaderboard entries", len(leaderboard))

	return leaderboard, nil
}
