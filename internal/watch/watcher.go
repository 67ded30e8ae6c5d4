// Package watch reloads a site definition whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// DefaultDebounce is how long the watcher waits for changes to settle.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors the definition file and the .env files next to it.
type Watcher struct {
	path      string
	files     map[string]struct{}
	loadOpts  []site.Option
	logger    *slog.Logger
	debounce  time.Duration
	onReload  func(*site.Site)
	onError   func(error)
	watcher   *fsnotify.Watcher
	stopChan  chan struct{}
	stopOnce  sync.Once
	reloadCh  chan struct{}
	reloadsMu sync.Mutex
	wg        sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) Option { return func(w *Watcher) { w.debounce = d } }

// WithLoadOptions passes options through to site.Load.
func WithLoadOptions(opts ...site.Option) Option {
	return func(w *Watcher) { w.loadOpts = append(w.loadOpts, opts...) }
}

// WithLogger sets the watcher's logger.
func WithLogger(l *slog.Logger) Option { return func(w *Watcher) { w.logger = l } }

// OnReload is called with every successfully reloaded site.
func OnReload(fn func(*site.Site)) Option { return func(w *Watcher) { w.onReload = fn } }

// OnError is called when a reload fails. The previous site stays in effect.
func OnError(fn func(error)) Option { return func(w *Watcher) { w.onError = fn } }

// New creates a watcher for the definition at path.
func New(path string, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve definition path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		path:     absPath,
		files:    map[string]struct{}{filepath.Base(absPath): {}, ".env": {}, ".env.local": {}},
		logger:   slog.Default(),
		debounce: DefaultDebounce,
		onReload: func(*site.Site) {},
		onError:  func(error) {},
		watcher:  fw,
		stopChan: make(chan struct{}),
		reloadCh: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start watches the definition's directory until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	// Editors replace files by rename, so the directory is watched rather than the file.
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.logger.Info("Watching site definition", logfields.ConfigPath(w.path))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop ends watching and waits for the loops to exit. Safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if _, watched := w.files[filepath.Base(event.Name)]; !watched {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				w.logger.Debug("Definition change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
				w.trigger()
			case event.Has(fsnotify.Remove):
				w.logger.Warn("Watched file removed", logfields.File(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.reloadCh <- struct{}{}:
	default:
		// reload already pending
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	defer w.wg.Done()
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-w.reloadCh:
			timer.Reset(w.debounce)
		case <-timer.C:
			_, _ = w.Reload()
		}
	}
}

// Reload loads the definition now and notifies OnReload or OnError.
func (w *Watcher) Reload() (*site.Site, error) {
	w.reloadsMu.Lock()
	defer w.reloadsMu.Unlock()

	reloadID := uuid.NewString()
	logger := w.logger.With(logfields.ReloadID(reloadID), logfields.ConfigPath(w.path))
	start := time.Now()

	opts := append([]site.Option{site.WithLogger(logger)}, w.loadOpts...)
	s, err := site.Load(w.path, opts...)
	if err != nil {
		logger.Error("Reload failed", logfields.Error(err))
		w.onError(err)
		return nil, err
	}
	logger.Info("Site definition reloaded",
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000),
		logfields.Count(len(s.Instances.All())))
	w.onReload(s)
	return s, nil
}
