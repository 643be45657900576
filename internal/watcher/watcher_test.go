package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gcat/gcat/pkg/logger"
)

func TestStudyWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "study.yaml")
	if err := os.WriteFile(path, []byte("version: \"1.0\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, logger.Discard())
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Close()
	w.SetSettlingDelay(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fired := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { fired <- struct{}{} })
	}()

	// Give the watcher loop a moment to start
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("version: \"1.0\"\nname: changed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-ctx.Done():
		t.Fatal("Timed out waiting for change notification")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestStudyWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "study.yaml")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, logger.Discard())
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Close()
	w.SetSettlingDelay(10 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var calls int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { atomic.AddInt32(&calls, 1) })
	}()

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	<-done
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("Expected no callbacks for unrelated files, got %d", n)
	}
}

func TestStudyWatcher_CoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "study.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, logger.Discard())
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Close()
	w.SetSettlingDelay(150 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var calls int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { atomic.AddInt32(&calls, 1) })
	}()

	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	<-done
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("Expected a single callback for a burst of writes, got %d", n)
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "study.yaml"), logger.Discard())
	if err == nil {
		t.Error("Expected error for a study in a missing directory")
	}
}
