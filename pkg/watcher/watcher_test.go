package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

// testLogger creates a logger for tests (discards output)
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}))
}

func TestNew_RequiresFiles(t *testing.T) {
	_, err := New(nil, time.Millisecond, func(context.Context) error { return nil }, testLogger())
	if err == nil {
		t.Error("Expected error for empty file list")
	}
}

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "echonote.png")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(src, []byte("v1"), 0644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	var runs atomic.Int32
	w, err := New([]string{src}, 100*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return nil
	}, testLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the folder
	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(other, []byte("ignored"), 0644); err != nil {
		t.Fatalf("Failed to write other file: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(src, []byte("v2"), 0644); err != nil {
			t.Fatalf("Failed to update source: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	deadline := time.Now().Add(3 * time.Second)
	for runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	// Let any straggling timer fire before counting
	time.Sleep(300 * time.Millisecond)

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if got := runs.Load(); got != 1 {
		t.Errorf("Expected exactly 1 regeneration for a burst of writes, got %d", got)
	}
}

func TestWatcher_MissingFolder(t *testing.T) {
	src := filepath.Join(t.TempDir(), "missing", "echonote.png")
	w, err := New([]string{src}, time.Millisecond, func(context.Context) error { return nil }, testLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := w.Run(context.Background()); err == nil {
		t.Error("Expected error when the source folder does not exist")
	}
}
