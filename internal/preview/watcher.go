package preview

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Root is the directory to watch.
	Root string

	// Debounce is the poll interval and minimum delay between reports.
	Debounce time.Duration
}

// Watcher monitors description files for changes by polling mod times.
type Watcher struct {
	config     WatcherConfig
	onChange   func(path string)
	mu         sync.Mutex
	running    bool
	stopCh     chan struct{}
	timestamps map[string]time.Time
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 200 * time.Millisecond
	}

	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching for file changes until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	w.scan(false)

	ticker := time.NewTicker(w.config.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.scan(true)
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// scan walks the root, updating mod times; when report is set, the
// first changed path triggers the callback (one report per pass).
func (w *Watcher) scan(report bool) {
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()

	var changed string

	filepath.Walk(w.config.Root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if shouldIgnore(info.Name()) && p != w.config.Root {
				return filepath.SkipDir
			}
			return nil
		}
		if shouldIgnore(info.Name()) {
			return nil
		}

		w.mu.Lock()
		last, seen := w.timestamps[p]
		modTime := info.ModTime()
		if !seen || modTime.After(last) {
			w.timestamps[p] = modTime
			if seen && changed == "" {
				changed = p
			}
		}
		w.mu.Unlock()
		return nil
	})

	// Deleted files count as changes too.
	w.mu.Lock()
	for p := range w.timestamps {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			delete(w.timestamps, p)
			if changed == "" {
				changed = p
			}
		}
	}
	w.mu.Unlock()

	if report && changed != "" && callback != nil {
		callback(changed)
	}
}

// shouldIgnore filters hidden files and editor droppings.
func shouldIgnore(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch {
	case strings.HasSuffix(name, "~"),
		strings.HasSuffix(name, ".swp"),
		strings.HasSuffix(name, ".tmp"):
		return true
	}
	return false
}
