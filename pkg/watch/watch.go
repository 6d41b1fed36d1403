// Package watch monitors a directory of review documents and delivers
// a coalesced signal whenever a document is created or written.
// fsnotify is the primary mechanism with a stat-polling fallback, so
// watch mode works on filesystems without native events.
package watch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// IsDocument reports whether name looks like a review document.
func IsDocument(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".toml")
}

// Watcher monitors a directory for review document changes.
type Watcher struct {
	dir string
	// events delivers a signal on document changes. Buffered to 1 so
	// back-to-back writes coalesce.
	events chan struct{}
	// done is closed by Close to stop the watch goroutine.
	done chan struct{}
	// fsw is the underlying fsnotify watcher; nil when polling from
	// the start. Never cleared afterwards, Close may read it.
	fsw  *fsnotify.Watcher
	once sync.Once
	// polling is true after falling back to stat-based polling.
	polling      atomic.Bool
	pollInterval time.Duration
	log          *slog.Logger
}

// New creates a watcher over the review documents in dir. The
// directory must exist; fsnotify failures degrade to polling rather
// than erroring.
func New(dir string, pollInterval time.Duration, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.Default()
	}
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch path %s is not a directory", dir)
	}

	w := &Watcher{
		dir:          dir,
		events:       make(chan struct{}, 1),
		done:         make(chan struct{}),
		pollInterval: pollInterval,
		log:          log,
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		log.Info("fsnotify unavailable, falling back to polling", "error", err)
		w.polling.Store(true)
		go w.poll()
		return w, nil
	}

	w.fsw = fsw
	if err := fsw.Add(dir); err != nil {
		log.Info("cannot watch directory, falling back to polling", "dir", dir, "error", err)
		fsw.Close()
		w.fsw = nil
		w.polling.Store(true)
		go w.poll()
		return w, nil
	}

	go w.watch()
	return w, nil
}

// Events returns the channel signalled when a document changes.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Polling reports whether the watcher is using polling instead of
// fsnotify.
func (w *Watcher) Polling() bool {
	return w.polling.Load()
}

// Close stops the watcher and releases resources. Safe to call more
// than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		if w.fsw != nil {
			if closeErr := w.fsw.Close(); closeErr != nil {
				err = fmt.Errorf("closing fsnotify watcher: %w", closeErr)
			}
		}
	})
	return err
}

// watch loops over fsnotify events, forwarding write/create
// notifications for review documents. On an fsnotify error the native
// watcher is dropped and polling takes over.
func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) && IsDocument(event.Name) {
				w.notify()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Keep w.fsw set so Close stays race-free; closing it
			// twice is a no-op.
			w.log.Info("fsnotify error, switching to polling", "error", err)
			w.fsw.Close()
			w.polling.Store(true)
			go w.poll()
			return
		}
	}
}

// poll periodically scans the directory and signals when any review
// document's modification time advances.
func (w *Watcher) poll() {
	lastMod := w.latestMod()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			mod := w.latestMod()
			if mod.After(lastMod) {
				lastMod = mod
				w.notify()
			}
		}
	}
}

// latestMod returns the most recent modification time among review
// documents in the watched directory.
func (w *Watcher) latestMod() time.Time {
	var latest time.Time
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return latest
	}
	for _, e := range entries {
		if e.IsDir() || !IsDocument(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest
}

// notify sends a single signal. If one is already pending the call is
// a no-op, coalescing rapid successive changes.
func (w *Watcher) notify() {
	select {
	case w.events <- struct{}{}:
	default:
	}
}

// ModifiedSince lists review documents in dir modified at or after t,
// for rescans between change signals.
func ModifiedSince(dir string, t time.Time) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan directory: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !IsDocument(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(t) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}
