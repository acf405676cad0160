package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// TuningWatcher reports freshly parsed tuning whenever the watched file changes.
// The host drains Updates between frames and calls Apply itself.
type TuningWatcher struct {
	watcher   *fsnotify.Watcher
	path      string
	base      Tuning
	overrides Overrides
	Updates   chan Tuning
	Errors    chan error
	closeCh   chan struct{}
	once      sync.Once
	wg        sync.WaitGroup
}

// WatchTuning watches the directory of path, so editors that replace the file on save keep working.
// Every reload is decoded over the configuration captured when watching started,
// then overrides are applied on top.
func WatchTuning(path string, overrides Overrides) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher:   w,
		path:      filepath.Clean(path),
		base:      CurrentTuning(),
		overrides: overrides,
		Updates:   make(chan Tuning, 4),
		Errors:    make(chan error, 4),
		closeCh:   make(chan struct{}),
	}
	tw.wg.Add(1)
	go tw.run()
	return tw, nil
}

func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
		tw.wg.Wait()
		close(tw.Updates)
		close(tw.Errors)
	})
	return err
}

func (tw *TuningWatcher) run() {
	defer tw.wg.Done()
	// Saves usually arrive as several events; reload once they settle.
	var settle <-chan time.Time
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			settle = time.After(reloadDebounce)
		case <-settle:
			settle = nil
			t, err := loadTuningOver(tw.base, tw.path)
			if err != nil {
				tw.send(nil, err)
				continue
			}
			t = tw.overrides.Over(t)
			tw.send(&t, nil)
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.send(nil, err)
		case <-tw.closeCh:
			return
		}
	}
}

// send never blocks the watcher loop; a full channel drops the report.
func (tw *TuningWatcher) send(t *Tuning, err error) {
	if t != nil {
		select {
		case tw.Updates <- *t:
		case <-tw.closeCh:
		default:
		}
		return
	}
	select {
	case tw.Errors <- err:
	case <-tw.closeCh:
	default:
	}
}
