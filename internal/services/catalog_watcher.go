// internal/services/catalog_watcher.go
package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shopsmart-backend/internal/utils"
)

// CatalogWatcher reloads the catalog when its file changes. Bursts of events
// within the debounce delay trigger a single reload.
type CatalogWatcher struct {
	path      string
	watcher   *fsnotify.Watcher
	debouncer *utils.Debouncer
}

// NewCatalogWatcher watches the directory holding path so that editors which
// replace the file by rename are still noticed.
func NewCatalogWatcher(path string, delay time.Duration, reload func(ctx context.Context)) (*CatalogWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &CatalogWatcher{
		path:    abs,
		watcher: watcher,
		debouncer: utils.NewDebouncer(delay, func() {
			reload(context.Background())
		}),
	}, nil
}

// Run consumes file events until ctx is done or the watcher is closed.
func (w *CatalogWatcher) Run(ctx context.Context) {
	defer w.debouncer.Stop()

	logrus.WithField("path", w.path).Info("Watching catalog file")
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				logrus.WithFields(logrus.Fields{
					"path": event.Name,
					"op":   event.Op.String(),
				}).Debug("Catalog file changed")
				w.debouncer.Trigger()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Warn("Catalog watcher error")
		}
	}
}

// Close stops the watcher and drops any pending reload.
func (w *CatalogWatcher) Close() error {
	w.debouncer.Stop()
	return w.watcher.Close()
}
