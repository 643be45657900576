// Package watcher re-runs a study analysis whenever its file changes.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gcat/gcat/pkg/logger"
)

// DefaultSettlingDelay coalesces the burst of events editors emit on save
const DefaultSettlingDelay = 100 * time.Millisecond

// StudyWatcher watches a single study file using fsnotify
type StudyWatcher struct {
	watcher  *fsnotify.Watcher
	logger   logger.Logger
	path     string
	settling time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	trigger chan struct{}
}

// New creates a watcher for the study file at path. The parent directory
// is watched so that editors replacing the file by rename are seen.
func New(path string, log logger.Logger) (*StudyWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &StudyWatcher{
		watcher:  w,
		logger:   log,
		path:     abs,
		settling: DefaultSettlingDelay,
		trigger:  make(chan struct{}, 1),
	}, nil
}

// Path returns the absolute path of the watched study
func (w *StudyWatcher) Path() string {
	return w.path
}

// SetSettlingDelay sets the quiet period required before onChange fires
func (w *StudyWatcher) SetSettlingDelay(delay time.Duration) {
	w.mu.Lock()
	w.settling = delay
	w.mu.Unlock()
}

// Run blocks, calling onChange once per settled burst of changes to the
// study file, until ctx is done or the watcher is closed. Calls to
// onChange never overlap.
func (w *StudyWatcher) Run(ctx context.Context, onChange func()) error {
	w.logger.Info(fmt.Sprintf("Watching %s for changes", w.path))

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Study file event", logger.WithField("op", event.Op.String()))
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(fmt.Sprintf("Watcher error: %v", err))

		case <-w.trigger:
			onChange()
		}
	}
}

// Close stops watching
func (w *StudyWatcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}

func (w *StudyWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// schedule restarts the settling timer
func (w *StudyWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.settling, func() {
		select {
		case w.trigger <- struct{}{}:
		default:
		}
	})
}

func (w *StudyWatcher) stopTimer() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}
