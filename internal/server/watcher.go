package server

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	command "github.com/goliatone/go-command"

	staticcmd "github.com/devforge/buildlog/internal/commands/static"
	"github.com/devforge/buildlog/internal/logging"
	"github.com/devforge/buildlog/pkg/interfaces"
)

const defaultDebounce = 300 * time.Millisecond

// WatchConfig configures source watching for rebuild-on-change.
type WatchConfig struct {
	// Paths lists files or directories to watch. Directories are watched
	// recursively as they exist at start time.
	Paths []string
	// Debounce coalesces change bursts into a single rebuild.
	Debounce time.Duration
}

// Watcher triggers site rebuilds when watched sources change.
type Watcher struct {
	cfg     WatchConfig
	builder command.Commander[staticcmd.BuildSiteCommand]
	logger  interfaces.Logger
}

// NewWatcher wires a filesystem watcher to the build command handler.
func NewWatcher(cfg WatchConfig, builder command.Commander[staticcmd.BuildSiteCommand], logger interfaces.Logger) (*Watcher, error) {
	if builder == nil {
		return nil, errors.New("server: build commander is required")
	}
	if len(cfg.Paths) == 0 {
		return nil, errors.New("server: at least one watch path is required")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Watcher{cfg: cfg, builder: builder, logger: logger}, nil
}

// Run watches until the context is cancelled. Each change burst produces one
// rebuild after the debounce window closes.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, root := range w.cfg.Paths {
		if err := addWatchTree(watcher, root); err != nil {
			w.logger.Warn("watch path unavailable", "path", root, "error", err)
		}
	}

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			// New directories need explicit registration.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addWatchTree(watcher, event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}
			w.logger.Debug("source change detected", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.cfg.Debounce)
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.cfg.Debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			w.rebuild(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) rebuild(ctx context.Context) {
	w.logger.Info("rebuilding site")
	if err := w.builder.Execute(ctx, staticcmd.BuildSiteCommand{Reason: "watch"}); err != nil {
		w.logger.Error("rebuild failed", "error", err)
	}
}

func addWatchTree(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(root)
	}
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && p != root {
			return filepath.SkipDir
		}
		return watcher.Add(p)
	})
}

func relevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
