// Package watch monitors a drop directory and imports any lead export
// file placed in it. Report-text files replace the collection, CSV files
// append to it, matching the import command.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/threec-labs/leads-cli/internal/core/ports/driving"
	"github.com/threec-labs/leads-cli/internal/logger"
)

// Watcher imports lead export files dropped into a directory.
type Watcher struct {
	dir string
	svc driving.LeadService
}

func New(dir string, svc driving.LeadService) *Watcher {
	return &Watcher{dir: dir, svc: svc}
}

// Start begins watching the drop directory. It returns once the watch is
// established; events are handled on a background goroutine until ctx is
// cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case evt := <-watcher.Events:
				if evt.Op&(fsnotify.Create|fsnotify.Rename) != 0 && isImportable(evt.Name) {
					w.importFile(ctx, evt.Name)
				}
			case err := <-watcher.Errors:
				logger.Warn("watch error: %v", err)
			}
		}
	}()
	return watcher.Add(w.dir)
}

// Backfill imports export files already present in the drop directory.
func (w *Watcher) Backfill(ctx context.Context) error {
	entries, err := filepath.Glob(filepath.Join(w.dir, "*"))
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if isImportable(entry) {
			w.importFile(ctx, entry)
		}
	}
	return nil
}

func (w *Watcher) importFile(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("skipping %s: %v", path, err)
		return
	}
	leads, err := w.svc.Import(ctx, path, string(data))
	if err != nil {
		logger.Warn("import of %s failed: %v", path, err)
		return
	}
	logger.Info("imported %s, collection now holds %d leads", filepath.Base(path), len(leads))
}

func isImportable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".csv":
		return true
	default:
		return false
	}
}
