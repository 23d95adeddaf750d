package config

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ReloadMsg carries a config reloaded after its file changed.
type ReloadMsg struct {
	Config Config
	Err    error
}

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string
	send func(ReloadMsg)

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// Watch starts watching path. send is called from the watcher goroutine
// with every reload; it must be safe to call concurrently with the caller.
//
// The directory is watched rather than the file so that editors which save
// by renaming a temporary file are still seen.
func Watch(path string, send func(ReloadMsg)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:  fsw,
		path: abs,
		send: send,
		done: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := Load(w.path)
			w.send(ReloadMsg{Config: cfg, Err: err})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("config: watch %s: %v", w.path, err)
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}
