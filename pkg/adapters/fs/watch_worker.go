package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/silt/pkg/core"
)

type watchWorker struct {
	*worker.BaseWorker
	source    *Source
	pattern   string
	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatchWorker(source *Source, pattern string, events chan core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("fs-watcher"),
		source:     source,
		pattern:    pattern,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.recursiveAdd(watcher); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(50 * time.Millisecond)
	w.source.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// recursiveAdd registers the source tree with the fsnotify watcher,
// skipping system and VCS directories.
func (w *watchWorker) recursiveAdd(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(w.source.Path, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" || d.Name() == w.source.config.SystemDir {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// shouldIgnore filters events that are not document changes: temp files
// from atomic writes, anything under the system dir, unsupported formats,
// and IDs outside the watch pattern.
func (w *watchWorker) shouldIgnore(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}

	rel, err := filepath.Rel(w.source.Path, event.Name)
	if err != nil {
		return true
	}
	rel = filepath.ToSlash(rel)
	for _, part := range strings.Split(rel, "/") {
		if part == ".git" || part == w.source.config.SystemDir {
			return true
		}
	}

	ext := filepath.Ext(base)
	if _, supported := w.source.codecs[ext]; !supported {
		// New directories still matter: they must be added to the watch.
		return !event.Has(fsnotify.Create) || !isDir(event.Name)
	}

	return !matchPattern(w.pattern, idForPath(rel, ext))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}

// processEvent handles filtering, mapping, and debouncing of filesystem
// events. Returns true if the event was accepted.
func (w *watchWorker) processEvent(ctx context.Context, event fsnotify.Event) bool {
	logger := w.source.config.Logger
	if logger != nil {
		logger.Debug("event received", "name", event.Name)
	}

	if w.shouldIgnore(event) {
		return false
	}

	// A created directory extends the watch instead of producing an event.
	if event.Has(fsnotify.Create) && isDir(event.Name) {
		_ = w.watcher.Add(event.Name)
		return false
	}

	eType := mapEventType(event)
	if eType == "" {
		return false
	}

	id, err := w.source.resolveID(event.Name)
	if err != nil {
		if logger != nil {
			logger.Debug("resolveID failed", "path", event.Name, "err", err)
		}
		return false
	}

	w.sendEvent(ctx, core.Event{
		Type:      eType,
		ID:        id,
		Timestamp: time.Now().Unix(),
	})

	return true
}

// sendEvent enqueues an event via the debouncer, protecting against
// channel closure during shutdown.
func (w *watchWorker) sendEvent(ctx context.Context, event core.Event) {
	w.debouncer.add(event, func(e core.Event) {
		defer func() {
			// Recover from panic if channel was closed (worker stopping)
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.source.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)

			// Stack capture only when debug logging is enabled; production
			// levels omit it to reduce log noise and I/O.
			var stack string
			if logger != nil && logger.Enabled(ctx, slog.LevelDebug) {
				stack = string(debug.Stack())
			}

			if logger != nil {
				if stack != "" {
					logger.Error("watcher panic", "error", panicErr, "stack", stack)
				} else {
					logger.Error("watcher panic", "error", panicErr)
				}
			}
		}
	}()
	defer w.source.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.eventLoop(ctx)

	// Shutdown order matters: stop the debouncer and wait for in-flight
	// timers before the channel is closed.
	w.debouncer.stopAndWait(5 * time.Second)
	close(w.events)

	return err
}

// eventLoop is the core select loop processing filesystem and watcher
// error events.
func (w *watchWorker) eventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			if logger := w.source.config.Logger; logger != nil {
				logger.Error("fsnotify error", "error", wErr)
			}
		}
	}
}
