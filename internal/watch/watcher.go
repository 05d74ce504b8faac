// Package watch reloads the dataset when its file changes on disk.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/user/daylily/internal/logging"
)

const (
	// DefaultDebounceInterval is how long to wait after the last change before reloading.
	DefaultDebounceInterval = 100 * time.Millisecond
)

// ReloadFunc is called once a burst of changes to the file has settled.
type ReloadFunc func(path string) error

// Watcher monitors one dataset file and calls a ReloadFunc after it changes.
//
// The parent directory is watched rather than the file itself, so an
// atomic replace (write temp file, rename over) is seen as a change.
type Watcher struct {
	path             string
	reloadFn         ReloadFunc
	logger           *zap.Logger
	debounceInterval time.Duration

	watcher   *fsnotify.Watcher
	stopChan  chan struct{}
	doneChan  chan struct{}
	closeOnce sync.Once

	mu       sync.Mutex
	pending  *time.Timer
	started  bool
	closed   bool
	inflight sync.WaitGroup
}

// NewWatcher creates a watcher for the dataset at path. logger may be nil.
func NewWatcher(path string, reloadFn ReloadFunc, logger *zap.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return &Watcher{
		path:             abs,
		reloadFn:         reloadFn,
		logger:           logging.OrNop(logger).Named("watch"),
		debounceInterval: DefaultDebounceInterval,
		watcher:          fsWatcher,
		stopChan:         make(chan struct{}),
		doneChan:         make(chan struct{}),
	}, nil
}

// SetDebounce changes the quiet period before a reload.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounceInterval = d
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching. A missing parent directory is an error; a missing
// file is not, it is picked up when created.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.logger.Debug("watching dataset", zap.String("path", w.path))

	w.mu.Lock()
	w.started = true
	w.mu.Unlock()

	go w.processEvents()
	return nil
}

// Close stops the watcher, cancels any pending reload and waits for the
// event loop and any running reload to finish.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		close(w.stopChan)
		w.watcher.Close()

		w.mu.Lock()
		if w.pending != nil {
			w.pending.Stop()
			w.pending = nil
		}
		w.closed = true
		started := w.started
		w.mu.Unlock()

		if started {
			<-w.doneChan
		}
		w.inflight.Wait()
	})
}

func (w *Watcher) processEvents() {
	defer close(w.doneChan)

	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.logger.Debug("dataset change detected", zap.String("op", event.Op.String()))
	w.scheduleReload()
}

// scheduleReload restarts the debounce timer.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounceInterval, w.doReload)
}

func (w *Watcher) doReload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.pending = nil
	w.inflight.Add(1)
	w.mu.Unlock()
	defer w.inflight.Done()

	if err := w.reloadFn(w.path); err != nil {
		w.logger.Error("dataset reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.logger.Info("dataset reloaded", zap.String("path", w.path))
}
