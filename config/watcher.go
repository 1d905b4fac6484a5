package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/go-theft-auto/gui-examples/logger"
)

// Watcher reloads a config file when it changes on disk. Reloads are
// picked up on the UI thread with Poll, so nothing is shared with the
// watcher goroutine but the channel.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *Config
	done    chan struct{}
	wg      sync.WaitGroup
}

// Watch starts watching path. The parent directory is watched so editors
// that replace the file on save are seen too.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config watcher: watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		updates: make(chan *Config, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				logger.L().Warn("config reload rejected", "path", w.path, "err", err)
				continue
			}
			w.publish(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.L().Warn("config watcher error", "err", err)
		}
	}
}

// publish replaces any reload the UI has not picked up yet.
func (w *Watcher) publish(cfg *Config) {
	for {
		select {
		case w.updates <- cfg:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}

// Poll returns the latest valid reload, if one arrived since the last call.
// It never blocks.
func (w *Watcher) Poll() (*Config, bool) {
	select {
	case cfg := <-w.updates:
		logger.L().Info("config reloaded", "path", w.path)
		return cfg, true
	default:
		return nil, false
	}
}

// Close stops the watcher goroutine.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
