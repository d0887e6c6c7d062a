package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "boardroom.log")
	logger, closer, err := New(Config{Path: path, Level: "info"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info().Str("job", "start").Msg("meeting started")
	if err := closer(); err != nil {
		t.Fatalf("closer() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "meeting started") {
		t.Fatalf("log entry missing from file: %q", data)
	}
	if !strings.Contains(string(data), `"service":"boardroom"`) {
		t.Fatalf("service field missing: %q", data)
	}
}

func TestNewEmptyPathDisablesLogging(t *testing.T) {
	t.Parallel()

	logger, closer, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info().Msg("dropped")
	if err := closer(); err != nil {
		t.Fatalf("closer() error = %v", err)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "boardroom.log")
	if _, _, err := New(Config{Path: path, Level: "verbose"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
