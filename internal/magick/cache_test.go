package magick

import (
	"context"
	"sync"
	"testing"
)

func TestInfoCache_CachesIdentifyResults(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "photo.jpg", "fake")
	shell := &mockShell{result: ExecResult{ExitStatus: 0, Output: "JPEG 100 80"}}
	runner := NewRunner(Config{Shell: shell})
	cache := NewInfoCache()

	first, err := cache.Info(context.Background(), path, runner)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	second, err := cache.Info(context.Background(), path, runner)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}

	if first != second {
		t.Error("cache miss on second lookup")
	}
	if len(shell.commands) != 1 {
		t.Errorf("identify ran %d times, want 1", len(shell.commands))
	}
}

func TestInfoCache_Evict(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "photo.jpg", "fake")
	shell := &mockShell{result: ExecResult{ExitStatus: 0, Output: "JPEG 100 80"}}
	runner := NewRunner(Config{Shell: shell})
	cache := NewInfoCache()

	if _, err := cache.Info(context.Background(), path, runner); err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	cache.Evict(path)
	if _, err := cache.Info(context.Background(), path, runner); err != nil {
		t.Fatalf("Info failed: %v", err)
	}

	if len(shell.commands) != 2 {
		t.Errorf("identify ran %d times after evict, want 2", len(shell.commands))
	}
}

func TestInfoCache_ErrorNotCached(t *testing.T) {
	runner := NewRunner(Config{Shell: &mockShell{}})
	cache := NewInfoCache()

	if _, err := cache.Info(context.Background(), "/nonexistent/x.jpg", runner); err == nil {
		t.Error("Info should fail for a missing file")
	}
}

func TestInfoCache_ConcurrentAccess(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "photo.jpg", "fake")
	shell := shellFunc(func(string) ExecResult {
		return ExecResult{ExitStatus: 0, Output: "JPEG 100 80"}
	})
	runner := NewRunner(Config{Shell: shell})
	cache := NewInfoCache()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Info(context.Background(), path, runner); err != nil {
				t.Errorf("Info failed: %v", err)
			}
		}()
	}
	wg.Wait()
	cache.Clear()
}
