package filemonitor

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher reports changes to a set of files. It watches the directory
// of each file so that files replaced by rename, as most editors do,
// keep being reported.
type Watcher struct {
	notify   *fsnotify.Watcher
	files    map[string]struct{}
	logger   *logrus.Logger
	settle   time.Duration
	onChange func(*logrus.Logger, string)
}

// NewWatch sets up monitoring of files. onChange runs once per file
// after writes to it have been quiet for settle.
func NewWatch(logger *logrus.Logger, files []string, settle time.Duration, onChange func(*logrus.Logger, string)) (*Watcher, error) {
	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		notify:   notify,
		files:    make(map[string]struct{}, len(files)),
		logger:   logger,
		settle:   settle,
		onChange: onChange,
	}
	dirs := make(map[string]struct{})
	for _, item := range files {
		path, err := filepath.Abs(item)
		if err != nil {
			notify.Close()
			return nil, err
		}
		w.files[path] = struct{}{}
		dir := filepath.Dir(path)
		if _, ok := dirs[dir]; ok {
			continue
		}
		dirs[dir] = struct{}{}
		if err := notify.Add(dir); err != nil {
			notify.Close()
			return nil, err
		}
		logger.Debugf("monitoring path '%v'", path)
	}
	return w, nil
}

// Run processes events until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	go func(ctx context.Context) {
		pending := make(map[string]struct{})
		timer := time.NewTimer(w.settle)
		if !timer.Stop() {
			<-timer.C
		}
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				w.notify.Close() // always returns nil for the error
				w.logger.Debug("terminating watcher")
				return
			case event, ok := <-w.notify.Events:
				if !ok {
					return
				}
				path, ok := w.relevant(event)
				if !ok {
					continue
				}
				w.logger.Debugf("watcher got event: %v", event)
				pending[path] = struct{}{}
				timer.Reset(w.settle)
			case <-timer.C:
				for path := range pending {
					if w.onChange != nil {
						w.onChange(w.logger, path)
					}
					delete(pending, path)
				}
			case err, ok := <-w.notify.Errors:
				if !ok {
					return
				}
				w.logger.Warnf("watcher got error: %v", err)
			}
		}
	}(ctx)
}

// relevant returns the watched file event is about, if any.
func (w *Watcher) relevant(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return "", false
	}
	path, err := filepath.Abs(event.Name)
	if err != nil {
		return "", false
	}
	_, ok := w.files[path]
	return path, ok
}
