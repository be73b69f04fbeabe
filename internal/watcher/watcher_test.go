package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hanifmaulana/transkrip/internal/logger"
)

func matchMP3(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".mp3"
}

func createFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("media"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func collectHandled(t *testing.T, handled <-chan string, n int) map[string]bool {
	t.Helper()
	got := make(map[string]bool)
	for len(got) < n {
		select {
		case path := <-handled:
			got[path] = true
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for %d handled files, got %v", n, got)
		}
	}
	return got
}

func TestStartFiltersAndHandlesCreatedFiles(t *testing.T) {
	dir := t.TempDir()
	handled := make(chan string, 10)

	handler := func(ctx context.Context, path string) error {
		handled <- path
		return nil
	}

	w, err := New(dir, matchMP3, handler, logger.New("error"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	first := createFile(t, dir, "a.mp3")
	createFile(t, dir, "notes.txt")
	second := createFile(t, dir, "b.mp3")

	got := collectHandled(t, handled, 2)
	if !got[first] || !got[second] {
		t.Errorf("handled = %v, want %s and %s", got, first, second)
	}

	// The .txt create was queued before b.mp3, so by now it has been
	// filtered out without reaching the handler.
	select {
	case path := <-handled:
		t.Errorf("unexpected handled file: %s", path)
	default:
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}
}

func TestStartHandlesFilesOneAtATime(t *testing.T) {
	dir := t.TempDir()
	handled := make(chan string, 10)

	var inFlight, overlapped int32
	handler := func(ctx context.Context, path string) error {
		if atomic.AddInt32(&inFlight, 1) > 1 {
			atomic.StoreInt32(&overlapped, 1)
		}
		time.Sleep(100 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		handled <- path
		return nil
	}

	w, err := New(dir, matchMP3, handler, logger.New("error"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	createFile(t, dir, "a.mp3")
	createFile(t, dir, "b.mp3")
	createFile(t, dir, "c.mp3")

	collectHandled(t, handled, 3)
	if atomic.LoadInt32(&overlapped) != 0 {
		t.Error("handler ran concurrently, want strictly sequential handling")
	}

	cancel()
	<-done
}

func TestStartContinuesAfterHandlerError(t *testing.T) {
	dir := t.TempDir()
	handled := make(chan string, 10)

	var calls int32
	handler := func(ctx context.Context, path string) error {
		handled <- path
		if atomic.AddInt32(&calls, 1) == 1 {
			return errors.New("transcription failed")
		}
		return nil
	}

	w, err := New(dir, matchMP3, handler, logger.New("error"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	createFile(t, dir, "a.mp3")
	createFile(t, dir, "b.mp3")

	// The failing first file must not stop the loop from handling the second.
	collectHandled(t, handled, 2)

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}
}
