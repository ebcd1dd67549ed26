package storage

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// TierWatcher watches a file tier's directory and reports externally
// modified keys through a debounced callback. Another process writing to the
// shared cache directory invalidates our in-memory copies this way.
type TierWatcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *keyDebouncer
	logger    ports.Logger
}

// NewTierWatcher creates a watcher for the given tier. Changed keys are
// coalesced over window before onChanged fires.
func NewTierWatcher(tier *FileTier, window time.Duration, onChanged func(keys []string), logger ports.Logger) (*TierWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	if err := fsWatcher.Add(tier.Dir()); err != nil {
		_ = fsWatcher.Close()
		return nil, zerr.Wrap(err, "failed to watch storage directory")
	}

	return &TierWatcher{
		fsWatcher: fsWatcher,
		debouncer: newKeyDebouncer(window, onChanged),
		logger:    logger,
	}, nil
}

// Start begins processing events until ctx is cancelled or Stop is called.
func (w *TierWatcher) Start(ctx context.Context) {
	go w.processEvents(ctx)
}

// Stop stops the watcher and releases all resources.
func (w *TierWatcher) Stop() error {
	return w.fsWatcher.Close()
}

func (w *TierWatcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			name := filepath.Base(event.Name)
			if !strings.HasSuffix(name, fileExt) {
				continue
			}
			w.debouncer.Add(strings.TrimSuffix(name, fileExt))
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Error(zerr.Wrap(err, "storage watcher error"))
			}
		}
	}
}

// keyDebouncer coalesces rapid change notifications into batched callbacks.
type keyDebouncer struct {
	mu       sync.Mutex
	pending  map[string]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(keys []string)
}

func newKeyDebouncer(window time.Duration, callback func(keys []string)) *keyDebouncer {
	return &keyDebouncer{
		pending:  make(map[string]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add adds a key to the pending set and restarts the window.
func (d *keyDebouncer) Add(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[key] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *keyDebouncer) fire() {
	d.mu.Lock()

	if len(d.pending) == 0 {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	keys := make([]string, 0, len(d.pending))
	for key := range d.pending {
		keys = append(keys, key)
	}
	d.pending = make(map[string]struct{})
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		go d.callback(keys)
	}
}
