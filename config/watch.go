package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a movement file when it changes on disk. Successful loads
// arrive on Reloads, decode or validation failures on Errors. Editors often
// write a file several times in a burst, so events for the same file are
// debounced.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Reloads chan MovementConfig
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the directory holding path. Watching the directory
// rather than the file survives editors that replace the file on save.
func NewWatcher(path string) (*Watcher, error) {
	if _, err := FormatFor(path); err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    filepath.Clean(path),
		Reloads: make(chan MovementConfig, 4),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now

			m, err := LoadMovement(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(&m, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

// send never blocks the watch loop. Results are dropped while a channel is
// full.
func (w *Watcher) send(m *MovementConfig, err error) {
	if err != nil {
		select {
		case w.Errors <- err:
		case <-w.closeCh:
		default:
		}
		return
	}
	select {
	case w.Reloads <- *m:
	case <-w.closeCh:
	default:
	}
}

// Apply drains pending results without blocking. Reloads replace the global
// tuning; errors are logged and the previous tuning stays. It reports
// whether any reload was applied.
func (w *Watcher) Apply() bool {
	applied := false
	for {
		select {
		case m := <-w.Reloads:
			ApplyMovement(m)
			log.Printf("Movement config reloaded from %s", w.path)
			applied = true
		case err := <-w.Errors:
			log.Printf("Movement config error: %v", err)
		default:
			return applied
		}
	}
}
