package quizprobe

import "time"

// Config holds configuration for the round probe.
type Config struct {
	BaseURL    string        // Base URL of the service
	Rounds     int           // Number of rounds to play
	Length     int           // Questions per round (0 uses the service default)
	Categories []string      // Category filter for rounds
	TopN       int           // Number of top entries to fetch
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	LogFile    string        // Log file for probe output
	Verbose    bool          // Enable verbose logging
}

// RoundResult captures the outcome of one played round.
type RoundResult struct {
	RoundID    string
	Score      int
	BestStreak int
	Questions  int
	Correct    int
	Saved      bool
	SavedName  string
}

// Stats holds probe statistics.
type Stats struct {
	RoundsPlayed       int
	RoundsFailed       int
	QuestionsAnswered  int
	CorrectAnswers     int
	ScoresSaved        int
	LeaderboardEntries int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
