package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestLoggerInit(t *testing.T) {
	err := Init()
	if err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	logger := Get()
	if logger == nil {
		t.Fatal("logger is nil after initialization")
	}

	// Re-initialization replaces the previous handler.
	err = Init()
	if err != nil {
		t.Fatalf("failed to re-initialize logger: %v", err)
	}

	logger = Get()
	if logger == nil {
		t.Fatal("logger is nil after re-initialization")
	}
}

func TestLoggerWriterAndFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithWriter(&buf), WithFormat("json")); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	Get().Info(ctx, "image resolved",
		String("aircraft", "boeing-747"),
		Bool("cached", true),
		Duration("took", 120*time.Millisecond),
	)

	out := buf.String()
	if !strings.Contains(out, `"msg":"image resolved"`) {
		t.Fatalf("expected JSON output with message, got: %s", out)
	}
	if !strings.Contains(out, `"aircraft":"boeing-747"`) {
		t.Errorf("expected aircraft field in output, got: %s", out)
	}
	if !strings.Contains(out, `"cached":true`) {
		t.Errorf("expected cached field in output, got: %s", out)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithWriter(&buf)); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	if err := SetLevelString("warn"); err != nil {
		t.Fatalf("failed to set level: %v", err)
	}
	defer func() {
		if err := SetLevelString("info"); err != nil {
			t.Errorf("failed to restore level: %v", err)
		}
	}()

	ctx := context.Background()
	Get().Debug(ctx, "hidden debug line")
	Get().Info(ctx, "hidden info line")
	Get().Warn(ctx, "visible warn line")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug/info lines to be filtered, got: %s", out)
	}
	if !strings.Contains(out, "visible warn line") {
		t.Errorf("expected warn line in output, got: %s", out)
	}
}

func TestLoggerLevelStringRejectsUnknown(t *testing.T) {
	if err := SetLevelString("chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLoggerNamed(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithWriter(&buf)); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	namedLogger := Named("imagery")
	if namedLogger == nil {
		t.Fatal("named logger is nil")
	}

	ctx := context.Background()
	namedLogger.Info(ctx, "resolver warmed")

	if !strings.Contains(buf.String(), "component=imagery") {
		t.Errorf("expected component field in output, got: %s", buf.String())
	}
}
