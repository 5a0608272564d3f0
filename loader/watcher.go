// SPDX-License-Identifier: MIT
package loader

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

// Watcher drops cache entries whose files change on disk, so a long-running
// session picks up edits on the next Load. Cache keys must be the paths as
// built from the watched directory (filepath.Join(dir, name)).
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	cache     *Cache
	log       *slog.Logger
	done      chan struct{}
	started   bool
}

// NewWatcher creates a watcher invalidating entries of c.
func NewWatcher(c *Cache, lg *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	if lg == nil {
		lg = slog.New(slog.DiscardHandler)
	}

	return &Watcher{
		fsWatcher: fw,
		cache:     c,
		log:       lg,
		done:      make(chan struct{}),
	}, nil
}

// Start watches dirs (non-recursively) until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context, dirs ...string) error {
	for _, dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", dir)
		}
	}
	w.started = true
	go w.processEvents(ctx)

	return nil
}

// Stop releases the watcher and waits for the event loop to exit. It must not
// be called concurrently with Start.
func (w *Watcher) Stop() error {
	err := w.fsWatcher.Close()
	if w.started {
		<-w.done
	}

	return err
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.done)

	const changed = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&changed == 0 {
				continue
			}
			if w.cache.Forget(event.Name) {
				w.log.Debug("matrix cache entry invalidated", "source", event.Name, "op", event.Op.String())
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", "error", err)
		}
	}
}
