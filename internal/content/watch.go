package content

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to the loaded page file so the preview can
// reload it. Events arrive on C; callers own draining it.
type Watcher struct {
	C chan string // absolute path of the changed page file

	fw   *fsnotify.Watcher
	path string
}

// Watch starts watching the page file. The parent directory is watched
// rather than the file itself so editors that replace the file (rename +
// create) keep being observed.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{C: make(chan string, 10), fw: fw, path: abs}
	go w.loop()
	return w, nil
}

// Close stops the watcher and closes C.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) loop() {
	defer close(w.C)
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) == w.path {
				w.C <- w.path
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}
