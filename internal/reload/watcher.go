// Package reload decides when the viewer re-reads its data: after the data
// file changes on disk and on a timed schedule.
package reload

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reason says what triggered a reload.
type Reason int

const (
	ReasonFileChanged Reason = iota
	ReasonSchedule
)

func (r Reason) String() string {
	if r == ReasonSchedule {
		return "schedule"
	}
	return "file changed"
}

// DefaultDebounce is how long a file must stay quiet before a change is
// reported.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reports changes to a single file. Bursts of writes within the
// debounce period are reported once.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	done     chan struct{}
	timer    *time.Timer
	path     string
	debounce time.Duration
	notify   func(Reason)
}

// Watch starts watching path. The parent directory is watched so that
// editors which replace the file on save are still seen. notify runs on a
// timer goroutine.
func Watch(path string, debounce time.Duration, notify func(Reason)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		watcher:  fw,
		done:     make(chan struct{}),
		path:     abs,
		debounce: debounce,
		notify:   notify,
	}
	log.Printf("INFO: Watching %s for changes (auto-reload enabled)", abs)

	go w.watchLoop(fw)
	return w, nil
}

// Stop ends the watch. A pending debounced notification is dropped.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher == nil {
		return
	}
	close(w.done)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.watcher.Close()
	w.watcher = nil
	log.Printf("INFO: File watcher for %s stopped", w.path)
}

func (w *Watcher) watchLoop(fw *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.schedule()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			log.Printf("ERROR: File watcher error: %v", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		log.Printf("INFO: Data file change detected: %s", filepath.Base(w.path))
		w.notify(ReasonFileChanged)
	})
}
