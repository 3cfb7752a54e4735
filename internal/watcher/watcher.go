// Package watcher follows a single file and reports when its content changed.
//
// The parent directory is watched rather than the file itself: most editors
// save by writing a temporary file and renaming it over the original, which
// would silently drop a watch placed on the old inode.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tartampluch/go-exact-age/internal/config"
)

// FileWatcher calls OnChange once per burst of writes to Path.
type FileWatcher struct {
	Path     string
	Debounce time.Duration
	OnChange func(path string)
}

// New creates a FileWatcher with the default debounce.
func New(path string, onChange func(string)) *FileWatcher {
	return &FileWatcher{
		Path:     path,
		Debounce: config.WatchDebounce,
		OnChange: onChange,
	}
}

// Run blocks until ctx is cancelled or the underlying watcher fails to start.
func (w *FileWatcher) Run(ctx context.Context) error {
	target, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrWatchStart, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrWatchStart, err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWatchStart, err)
	}

	slog.Info(config.MsgWatchStart,
		config.LogKeyComponent, config.CompWatcher,
		config.LogKeyFile, target)

	w.loop(ctx, fsw, target)

	slog.Info(config.MsgWatchStop, config.LogKeyComponent, config.CompWatcher)
	return nil
}

func (w *FileWatcher) loop(ctx context.Context, fsw *fsnotify.Watcher, target string) {
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = config.WatchDebounce
	}

	// A stopped timer whose channel is only armed by a relevant event.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !relevant(event, target) {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			slog.Error(config.ErrWatchEvent,
				config.LogKeyComponent, config.CompWatcher,
				config.LogKeyError, err)

		case <-timer.C:
			slog.Debug(config.MsgWatchChanged,
				config.LogKeyComponent, config.CompWatcher,
				config.LogKeyFile, target)
			if w.OnChange != nil {
				w.OnChange(target)
			}
		}
	}
}

// relevant keeps creations and writes of the followed file. Removal is
// ignored: the rename step of an atomic save is followed by a Create.
func relevant(event fsnotify.Event, target string) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == target
}
