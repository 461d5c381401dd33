package definition

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"herald/pkg/command"
	"herald/pkg/logging"
)

// Watcher keeps a registry in sync with a definitions directory. Filesystem
// events are debounced, then the whole directory is recompiled and the
// registry swapped wholesale; resolution attempts racing a reload see either
// the previous tree or the new one. A reload that fails to load or compile
// is logged and dropped, leaving the previous tree serving.
type Watcher struct {
	mu sync.Mutex

	dir      string
	handlers *Handlers
	registry *command.Registry

	watcher          *fsnotify.Watcher
	debounceInterval time.Duration
	pending          *time.Timer

	stopCh  chan struct{}
	running bool

	// onReload, if set, is called after every attempted reload with the
	// command count and outcome. Used by the shell to repaint state and by
	// tests to synchronize.
	onReload func(count int, err error)
}

// NewWatcher creates a watcher for the given directory. A zero debounce
// interval defaults to 500ms.
func NewWatcher(dir string, handlers *Handlers, registry *command.Registry, debounceInterval time.Duration) *Watcher {
	if debounceInterval == 0 {
		debounceInterval = 500 * time.Millisecond
	}
	return &Watcher{
		dir:              dir,
		handlers:         handlers,
		registry:         registry,
		debounceInterval: debounceInterval,
		stopCh:           make(chan struct{}),
	}
}

// OnReload registers a callback invoked after every attempted reload.
// Must be called before Start.
func (w *Watcher) OnReload(fn func(count int, err error)) {
	w.onReload = fn
}

// Start begins watching. The watch runs until the context is canceled or
// Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		w.mu.Unlock()
		return err
	}

	w.watcher = watcher
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	go w.processEvents(ctx)

	logging.Info("Watcher", "Started watching %s for definition changes", w.dir)
	return nil
}

// Stop ends the watch and cancels any pending reload.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.watcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFsEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Error("Watcher", err, "Filesystem watcher error")
		}
	}
}

func (w *Watcher) handleFsEvent(event fsnotify.Event) {
	if !isYAMLFile(event.Name) {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	// Every change triggers a full-directory reload, so one timer for the
	// whole directory is enough debouncing.
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounceInterval, w.reload)
	logging.Debug("Watcher", "Definition change in %s, reload scheduled", event.Name)
}

// reload recompiles the directory and swaps the registry.
func (w *Watcher) reload() {
	defs, err := LoadDirectory(w.dir)
	if err == nil {
		var cmds []*command.Command
		cmds, err = CompileAll(defs, w.handlers)
		if err == nil {
			err = w.registry.Replace(cmds)
		}
	}

	count := len(w.registry.Commands())
	if err != nil {
		logging.Warn("Watcher", "Reload failed, keeping previous commands: %v", err)
	} else {
		logging.Info("Watcher", "Reloaded %d commands from %s", count, w.dir)
	}
	if w.onReload != nil {
		w.onReload(count, err)
	}
}
