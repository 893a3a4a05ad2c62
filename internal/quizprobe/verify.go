package quizprobe

import (
	"fmt"
	"log"
	"sort"

	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/types"
)

// verifyResults cross-checks the played rounds against the leaderboard.
func verifyResults(config *Config, results []RoundResult, leaderboard []types.Entry) error {
	log.Println("🔍 Verifying results...")

	if len(results) == 0 {
		return fmt.Errorf("no completed rounds to verify")
	}

	// Sort played rounds by score (descending) to get the best runs
	sorted := make([]RoundResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if len(leaderboard) > 0 {
		if err := verifyLeaderboardConsistency(sorted, leaderboard); err != nil {
			log.Printf("⚠️  Leaderboard consistency warning: %v", err)
		} else {
			log.Println("✅ Leaderboard consistency verified")
		}
	}

	displayBestRounds(sorted, leaderboard, config.Verbose)

	log.Println("✅ Result verification completed")
	return nil
}

// verifyLeaderboardConsistency checks ordering and that every score the
// probe saved actually appears on the board.
func verifyLeaderboardConsistency(sorted []RoundResult, leaderboard []types.Entry) error {
	if len(leaderboard) == 0 {
		return fmt.Errorf("empty leaderboard")
	}

	// Check if the leaderboard is properly sorted
	for i := 1; i < len(leaderboard); i++ {
		if leaderboard[i].Score > leaderboard[i-1].Score {
			return fmt.Errorf("leaderboard not properly sorted: entry %d has higher score than entry %d",
				i, i-1)
		}
	}

	// The best saved score must not beat the top of the board
	for _, r := range sorted {
		if r.Saved {
			if r.Score > leaderboard[0].Score {
				return fmt.Errorf("saved score %d (%s) exceeds top leaderboard score %d",
					r.Score, r.SavedName, leaderboard[0].Score)
			}
			break
		}
	}

	// Every saved name that fits in the table must appear with its score
	onBoard := make(map[string]int, len(leaderboard))
	for _, e := range leaderboard {
		onBoard[e.Name] = e.Score
	}
	lowest := leaderboard[len(leaderboard)-1].Score
	for _, r := range sorted {
		if !r.Saved {
			continue
		}
		score, ok := onBoard[r.SavedName]
		if !ok {
			if r.Score > lowest {
				return fmt.Errorf("saved entry %s (score %d) missing from leaderboard", r.SavedName, r.Score)
			}
			continue // legitimately pushed off the table
		}
		if score != r.Score {
			return fmt.Errorf("leaderboard score for %s is %d, probe saved %d", r.SavedName, score, r.Score)
		}
	}

	return nil
}

// displayBestRounds shows the best played rounds and the leaderboard.
func displayBestRounds(sorted []RoundResult, leaderboard []types.Entry, verbose bool) {
	topN := 10
	if len(sorted) < topN {
		topN = len(sorted)
	}

	log.Printf("🏆 Top %d played rounds:", topN)
	for i := 0; i < topN; i++ {
		r := sorted[i]
		log.Printf("   %d. %s - Score: %d (correct %d/%d, best streak %d)",
			i+1, r.RoundID, r.Score, r.Correct, r.Questions, r.BestStreak)
	}

	if len(leaderboard) > 0 {
		boardTopN := topN
		if len(leaderboard) < boardTopN {
			boardTopN = len(leaderboard)
		}

		log.Printf("🥇 Top %d leaderboard entries:", boardTopN)
		for i := 0; i < boardTopN; i++ {
			e := leaderboard[i]
			log.Printf("   %d. %s - Score: %d", i+1, e.Name, e.Score)
		}
	}

	if verbose {
		// Show some statistics
		if len(sorted) > 0 {
			avg := calculateAverageScore(sorted)
			max := sorted[0].Score
			min := sorted[len(sorted)-1].Score

			log.Printf(`📊 Score statistics:
   Average: %.1f
   Maximum: %d
   Minimum: %d
`, avg, max, min)
		}
	}
}

// calculateAverageScore calculates the average score across played rounds.
func calculateAverageScore(results []RoundResult) float64 {
	if len(results) == 0 {
		return 0
	}

	sum := 0
	for _, r := range results {
		sum += r.Score
	}

	return float64(sum) / float64(len(results))
}
