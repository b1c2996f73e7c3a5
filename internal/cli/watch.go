package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/eigenkit/internal/logging"
)

// fileWatcher reports changes to a single file. The parent directory is
// watched rather than the file itself so editors that save by rename are
// still seen.
type fileWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      *logging.Logger
}

func newFileWatcher(path string, debounce time.Duration, log *logging.Logger) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err = w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if log == nil {
		log = logging.NopLogger()
	}

	return &fileWatcher{path: abs, watcher: w, debounce: debounce, log: log}, nil
}

// run calls onChange once per burst of events on the file, after the burst
// has been quiet for the debounce window. onChange always runs on the
// calling goroutine. run returns nil when ctx is cancelled.
func (fw *fileWatcher) run(ctx context.Context, onChange func()) error {
	defer fw.watcher.Close()

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			fw.log.Debug("file event", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(fw.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			onChange()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn("watch error", "error", err)
		}
	}
}
