package siteconfig

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

/*
Watcher reloads a Store whenever its file is written, created, renamed
into place or removed.
*/
type Watcher struct {
	watcher *fsnotify.Watcher
	store   *Store
	done    chan struct{}
	wg      sync.WaitGroup

	mu      sync.Mutex
	running bool
}

func NewWatcher(store *Store) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating site configuration watcher: %w", err)
	}

	return &Watcher{
		watcher: watcher,
		store:   store,
		done:    make(chan struct{}),
	}, nil
}

func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	// Editors replace files rather than writing in place, so watch the directory.
	dir := filepath.Dir(w.store.Path())
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("error watching '%s': %w", dir, err)
	}

	w.running = true
	w.wg.Add(1)
	go w.watch()

	slog.Info("watching site configuration", "path", w.store.Path())
	return nil
}

func (w *Watcher) watch() {
	defer w.wg.Done()
	filename := filepath.Base(w.store.Path())

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				slog.Info("site configuration changed, reloading", "path", w.store.Path(), "op", event.Op.String())

				if err := w.store.Reload(); err != nil {
					slog.Warn("site configuration reload failed", "error", err)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			slog.Warn("site configuration watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return w.watcher.Close()
	}

	w.running = false
	close(w.done)
	w.wg.Wait()

	return w.watcher.Close()
}
