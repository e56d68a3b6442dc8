package assets

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce drops repeated events for the same file; editors write in bursts.
const debounce = 100 * time.Millisecond

// LevelWatcher reports level files that changed on disk, as level identifiers.
// Events is closed after Close.
type LevelWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchLevels starts watching dir for TMX changes.
func WatchLevels(dir string) (*LevelWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &LevelWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *LevelWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Drain returns the identifiers that changed since the last call without blocking.
func (w *LevelWatcher) Drain() []string {
	var changed []string
	seen := make(map[string]bool)
	for {
		select {
		case id, ok := <-w.Events:
			if !ok {
				return changed
			}
			if !seen[id] {
				seen[id] = true
				changed = append(changed, id)
			}
		default:
			return changed
		}
	}
}

func (w *LevelWatcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			id, ok := LevelIdentifier(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[id]; ok && now.Sub(t) < debounce {
				continue
			}
			last[id] = now
			select {
			case w.Events <- id:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// LevelIdentifier maps a level file path to its identifier, the file stem.
func LevelIdentifier(path string) (string, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if !strings.EqualFold(ext, ".tmx") {
		return "", false
	}
	return strings.TrimSuffix(base, ext), true
}
