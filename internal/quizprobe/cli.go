package quizprobe

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/nahubn1/airplane-recognition-quiz/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "probe_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the round probe.
func ShowHelp() {
	os.Stdout.WriteString(`SkyQuiz Round Probe
===================

A concurrent tool for exercising a running SkyQuiz service: it plays full
rounds, saves scores, and verifies leaderboard consistency.

Usage:
  go run cmd/quiz-probe/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8080")
  -rounds int
        Number of rounds to play (default 20)
  -length int
        Questions per round, 0 uses the service default (default 0)
  -categories string
        Comma-separated category filter (commercial,military,general,vintage)
  -top int
        Number of top entries to fetch from leaderboard (default 10)
  -workers int
        Number of concurrent workers (default CPU cores)
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for probe output (default: probe_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Probe with default settings
  go run cmd/quiz-probe/main.go

  # Probe with custom parameters
  go run cmd/quiz-probe/main.go -rounds 100 -workers 8 -url http://localhost:8080

  # Probe military aircraft only, short rounds
  go run cmd/quiz-probe/main.go -categories military -length 5

  # Probe with verbose output
  go run cmd/quiz-probe/main.go -verbose -rounds 50
`)
}
