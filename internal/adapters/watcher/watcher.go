// Package watcher triggers re-resolution when watched toolchain paths change.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/anvil-build/anvil/internal/core/ports"
	"github.com/fsnotify/fsnotify"
)

const (
	eventChannelBuffer = 16
	debounceWindow     = 500 * time.Millisecond
)

// Watcher observes toolchain roots and config files and emits one coalesced
// change event per burst of filesystem activity.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	events    chan string

	mu      sync.Mutex
	pending *time.Timer
	last    string
}

// New creates a new Watcher.
func New(logger ports.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fw,
		logger:    logger,
		events:    make(chan string, eventChannelBuffer),
	}, nil
}

// Add registers a path to watch. Missing paths are skipped silently; a
// toolchain root that does not exist yet simply produces no events.
func (w *Watcher) Add(path string) {
	if path == "" {
		return
	}
	if err := w.fsWatcher.Add(filepath.Clean(path)); err != nil {
		w.logger.Debug("not watching " + path + ": " + err.Error())
	}
}

// Start begins processing filesystem events until the context is done.
func (w *Watcher) Start(ctx context.Context) {
	go w.processEvents(ctx)
}

// Events returns the channel of coalesced change notifications. Each value
// is the path of the last event in the burst.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()
	return w.fsWatcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.debounce(event.Name)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// debounce coalesces rapid event bursts into a single notification.
func (w *Watcher) debounce(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.last = path
	if w.pending != nil {
		w.pending.Reset(debounceWindow)
		return
	}

	w.pending = time.AfterFunc(debounceWindow, func() {
		w.mu.Lock()
		path := w.last
		w.pending = nil
		w.mu.Unlock()

		select {
		case w.events <- path:
		default:
			// A notification is already queued; the pending re-resolution
			// will observe this change too.
		}
	})
}
