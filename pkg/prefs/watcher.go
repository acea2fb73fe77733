package prefs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce batches the burst of events an editor save produces.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads the preferences file whenever it changes on disk.
// The parent directory is watched so atomic replace-by-rename is seen.
type Watcher struct {
	path     string
	fw       *fsnotify.Watcher
	log      *zap.Logger
	debounce time.Duration
	changes  chan Prefs
}

// NewWatcher creates a watcher for path. The directory is created if it
// does not exist yet.
func NewWatcher(path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("prefs: watch: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefs: watch: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("prefs: watch %s: %w", dir, err)
	}
	return &Watcher{
		path:     filepath.Clean(path),
		fw:       fw,
		log:      log,
		debounce: DefaultDebounce,
		changes:  make(chan Prefs),
	}, nil
}

// Changes delivers each successfully reloaded preference set. It is closed
// when Run returns.
func (w *Watcher) Changes() <-chan Prefs {
	return w.changes
}

// Run processes filesystem events until ctx is done. It always closes the
// underlying watcher and the Changes channel.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.changes)
	defer w.fw.Close()

	tick := time.NewTicker(w.debounce / 3)
	defer tick.Stop()

	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("prefs event", zap.String("op", ev.Op.String()))
			pending = time.Now()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("prefs watcher error", zap.Error(err))

		case <-tick.C:
			if pending.IsZero() || time.Since(pending) < w.debounce {
				continue
			}
			pending = time.Time{}
			p, found, err := Load(w.path)
			if err != nil {
				w.log.Warn("prefs reload failed", zap.Error(err))
				continue
			}
			if !found {
				continue
			}
			select {
			case w.changes <- p:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
