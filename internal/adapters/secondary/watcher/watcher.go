// Package watcher observes the deck's source files and reports changes
// so the running presentation can be rebuilt.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses editor write bursts (truncate, write,
// chmod) into a single change notification.
const DefaultDebounce = 500 * time.Millisecond

// SourceWatcher watches a fixed set of script files through fsnotify.
// Directories are watched rather than the files themselves so that
// editors which replace files on save keep triggering events.
type SourceWatcher struct {
	debounce time.Duration
	events   chan string
	stopCh   chan struct{}
	wg       sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

// NewSourceWatcher creates a watcher with the given debounce window
func NewSourceWatcher(debounce time.Duration) *SourceWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &SourceWatcher{
		debounce: debounce,
		events:   make(chan string, 1),
		stopCh:   make(chan struct{}),
	}
}

// Watch starts watching the given source files. The returned channel
// delivers the path of a changed source, debounced.
func (w *SourceWatcher) Watch(ctx context.Context, paths []string) (<-chan string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no sources to watch")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("resolving path %s: %w", path, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { _ = fsw.Close() }()
		w.loop(ctx, fsw, watched)
	}()

	return w.events, nil
}

// Stop ends the watch loop and closes the event channel
func (w *SourceWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true

	close(w.stopCh)
	w.wg.Wait()
	close(w.events)
}

func (w *SourceWatcher) loop(ctx context.Context, fsw *fsnotify.Watcher, watched map[string]bool) {
	lastSent := time.Time{}

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !relevant(event, watched) {
				continue
			}
			if time.Since(lastSent) < w.debounce {
				continue
			}

			select {
			case w.events <- event.Name:
				lastSent = time.Now()
			default:
				// A pending notification already covers this change.
			}

		case _, ok := <-fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// relevant reports whether an fsnotify event concerns one of the
// watched sources and changes its content.
func relevant(event fsnotify.Event, watched map[string]bool) bool {
	abs, err := filepath.Abs(event.Name)
	if err != nil || !watched[abs] {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}
