// Package watch reports changes to Markdown notes under a vault folder.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change kinds.
const (
	KindUpdated = "updated"
	KindDeleted = "deleted"
)

// DefaultDebounce is the quiet period before a burst of events on one note
// is reported.
const DefaultDebounce = 100 * time.Millisecond

// EventCallback is called once per settled note change. path is relative to
// the vault root and uses forward slashes.
type EventCallback func(kind, path string)

// Watcher follows a directory tree inside a vault.
type Watcher struct {
	root     string
	dir      string
	debounce time.Duration
	logger   *slog.Logger
}

// New creates a Watcher for dir, reporting paths relative to root.
func New(root, dir string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{root: root, dir: dir, debounce: DefaultDebounce, logger: logger}
}

// WithDebounce sets the quiet period and returns the watcher.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Run watches until ctx is cancelled. Directories created while running are
// added to the watch list, so date formats with nested folders are covered.
// A note replaced through rename shows up as an update of its final path.
func (w *Watcher) Run(ctx context.Context, cb EventCallback) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := addDirsRecursive(fw, w.dir); err != nil {
		return err
	}
	w.logger.Info("watcher: started", slog.String("dir", w.dir))

	pending := make(map[string]string)
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	flush := func() {
		for rel, kind := range pending {
			w.logger.Debug("watcher: note changed", slog.String("path", rel), slog.String("kind", kind))
			if cb != nil {
				cb(kind, rel)
			}
		}
		clear(pending)
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info("watcher: stopped")
			return nil

		case <-timer.C:
			flush()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if ev.Has(fsnotify.Create) {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(fw, ev.Name); addErr != nil {
						w.logger.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
					continue
				}
			}

			if !isNote(ev.Name) {
				continue
			}
			rel, relErr := filepath.Rel(w.root, ev.Name)
			if relErr != nil {
				continue
			}
			rel = filepath.ToSlash(rel)

			switch {
			case ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write):
				pending[rel] = KindUpdated
			case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
				pending[rel] = KindDeleted
			default:
				continue
			}
			timer.Reset(w.debounce)

		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// isNote reports whether name is a visible Markdown file. Temp files of
// atomic writes start with a dot and are skipped.
func isNote(name string) bool {
	base := filepath.Base(name)
	return strings.HasSuffix(base, ".md") && !strings.HasPrefix(base, ".")
}

func addDirsRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}
