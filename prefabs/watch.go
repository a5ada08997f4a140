package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports edits to prefab and script files. The game loop drains it
// with Poll between ticks so reloads never race the simulation.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan string
	errors  chan error
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		changes: make(chan string, 16),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	watcher.wg.Add(1)
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

// Poll returns the prefab names changed since the last call, deduplicated,
// and the first watcher error if one occurred. It never blocks.
func (w *Watcher) Poll() ([]string, error) {
	if w == nil {
		return nil, nil
	}
	var names []string
	seen := map[string]bool{}
	var firstErr error
	for {
		select {
		case name := <-w.changes:
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		case err := <-w.errors:
			if firstErr == nil {
				firstErr = err
			}
		default:
			return names, firstErr
		}
	}
}

func (w *Watcher) run() {
	defer w.wg.Done()
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
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < watchDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.changes <- filepath.Base(event.Name):
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
