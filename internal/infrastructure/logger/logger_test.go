package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_WritesToLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, err := New(dir, "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Info("estimate created")
	_ = log.Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read log dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one log file, got %d", len(entries))
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := New(t.TempDir(), "chatty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Core().Enabled(-1) {
		t.Fatalf("debug must be disabled at info level")
	}
}
