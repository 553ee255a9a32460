package manifest

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/teranos/jcodemodel/errors"
	"go.uber.org/zap"
)

// ChangeCallback receives the freshly loaded manifest after a change.
type ChangeCallback func(*Manifest) error

// Watcher reloads a manifest when its file changes and hands the result to
// the registered callbacks. Every reload builds a new Manifest; nothing is
// shared between reloads.
type Watcher struct {
	path           string
	watcher        *fsnotify.Watcher
	logger         *zap.SugaredLogger
	callbacks      []ChangeCallback
	mu             sync.Mutex
	reloadMu       sync.Mutex // held for a whole reload, callbacks included
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	done           chan struct{}
	stopOnce       sync.Once
}

// NewWatcher watches the manifest at path. The containing directory is
// watched so that editors replacing the file by rename are noticed too.
func NewWatcher(path string, debounce time.Duration, logger *zap.SugaredLogger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", filepath.Dir(abs))
	}

	return &Watcher{
		path:           abs,
		watcher:        fw,
		logger:         logger,
		debouncePeriod: debounce,
		done:           make(chan struct{}),
	}, nil
}

// OnChange registers a callback
func (w *Watcher) OnChange(cb ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Start begins watching for changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debugw("manifest changed",
				"file", event.Name,
				"op", event.Op.String())
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("manifest watcher error",
				"error", err)

		case <-w.done:
			return
		}
	}
}

// scheduleReload debounces rapid file changes
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.reload(); err != nil {
			w.logger.Errorw("manifest reload failed",
				"path", w.path,
				"error", err)
		}
	})
}

// reload loads the manifest and runs the callbacks. Reloads never overlap,
// so callbacks that write the same output run one at a time.
func (w *Watcher) reload() error {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()

	select {
	case <-w.done:
		return nil
	default:
	}

	m, err := Load(w.path)
	if err != nil {
		return err
	}
	w.logger.Infow("manifest reloaded",
		"path", w.path,
		"fragments", len(m.Fragments))

	w.mu.Lock()
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, cb := range callbacks {
		if err := cb(m); err != nil {
			// Remaining callbacks still run
			w.logger.Warnw("manifest change callback error",
				"error", err)
		}
	}
	return nil
}

// Stop stops watching
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}
