// Package watch re-runs a callback when input files change on disk. It backs
// `insight dump --watch`.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/arthur-debert/insightdump/pkg/errors"
	"github.com/arthur-debert/insightdump/pkg/logging"
)

// DefaultDebounce collapses the bursts of events a single save produces
const DefaultDebounce = 100 * time.Millisecond

// Option configures Watch
type Option func(*watcher)

// WithDebounce sets how long a path must stay quiet before fn is called
func WithDebounce(d time.Duration) Option {
	return func(w *watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

type watcher struct {
	debounce time.Duration
	files    map[string]bool
	pending  map[string]time.Time
}

// Watch calls fn with the path of every watched file that is written,
// created or replaced. It blocks until ctx is done and returns nil then.
//
// The parent directories are watched rather than the files, so editors that
// save by renaming a temporary file over the original keep being tracked.
func Watch(ctx context.Context, paths []string, fn func(path string), opts ...Option) error {
	logger := logging.GetLogger("watch")

	w := &watcher{
		debounce: DefaultDebounce,
		files:    make(map[string]bool, len(paths)),
		pending:  make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to create file watcher")
	}
	defer func() { _ = fsw.Close() }()

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", p).WithDetail("path", p)
		}
		w.files[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to watch %s", dir).WithDetail("path", dir)
		}
		dirs[dir] = true
		logger.Debug().Str("dir", dir).Msg("Watching directory")
	}

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Trace().Str("path", event.Name).Str("op", event.Op.String()).Msg("File event")
			w.pending[filepath.Clean(event.Name)] = time.Now()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("File watcher error")

		case now := <-ticker.C:
			for path, seen := range w.pending {
				if now.Sub(seen) < w.debounce {
					continue
				}
				delete(w.pending, path)
				logger.Debug().Str("path", path).Msg("File changed")
				fn(path)
			}
		}
	}
}
