package execution

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher notices result markers as soon as the runner writes them. The
// marker file stays the only completion signal; the watcher only triggers
// the same resolution path a status poll takes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onMarker func(ctx context.Context, taskID string)

	mu   sync.Mutex
	dirs map[string]string // execution dir -> task id
}

func NewWatcher(onMarker func(ctx context.Context, taskID string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	return &Watcher{fsw: fsw, onMarker: onMarker, dirs: map[string]string{}}, nil
}

// Watch starts watching the execution directory of a task. The directory is
// dropped from the watch list once its marker was handled.
func (w *Watcher) Watch(taskID, dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.dirs[filepath.Clean(dir)] = taskID
	return nil
}

func (w *Watcher) Watching() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.dirs)
}

// Run dispatches marker events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != ResultFile {
				continue
			}
			// The runner renames a temp file onto the marker, which arrives as Create.
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			dir := filepath.Dir(filepath.Clean(event.Name))
			w.mu.Lock()
			taskID, ok := w.dirs[dir]
			if ok {
				delete(w.dirs, dir)
				_ = w.fsw.Remove(dir)
			}
			w.mu.Unlock()
			if !ok {
				continue
			}
			slog.InfoContext(ctx, "result marker detected", "task_id", taskID)
			w.onMarker(ctx, taskID)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.WarnContext(ctx, "marker watcher error", "error", err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}
