// Package watcher adapts fsnotify to the monitoring watcher interface.
package watcher

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/contre95/filepulse/src/features/monitoring"
	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 500 * time.Millisecond

// Watcher monitors a single file for changes and emits debounced events.
// fsnotify watches the containing directory rather than the file itself so
// that editors replacing the file via rename, and the file being recreated
// after deletion, are still observed.
type Watcher struct {
	watcher       *fsnotify.Watcher
	filePath      string
	debounceTimer *time.Timer
	debounceMutex sync.Mutex
	running       bool
	stopChan      chan struct{}
	eventChan     chan monitoring.ChangeEvent
	errorChan     chan error
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:   fsw,
		eventChan: make(chan monitoring.ChangeEvent, 1),
		errorChan: make(chan error, 1),
		stopChan:  make(chan struct{}),
	}, nil
}

// Start begins watching the directory containing filePath.
func (w *Watcher) Start(filePath string) error {
	w.filePath = filepath.Clean(filePath)
	dir := filepath.Dir(w.filePath)
	slog.Debug("Starting file watcher", "file", w.filePath, "dir", dir)

	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	w.running = true
	go w.watchLoop()

	slog.Debug("File watcher started")
	return nil
}

// Events returns the channel of debounced change events.
func (w *Watcher) Events() <-chan monitoring.ChangeEvent {
	return w.eventChan
}

// Errors returns the channel of internal watcher failures.
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Stop stops the watcher. No events are emitted after Stop returns.
func (w *Watcher) Stop() {
	if !w.running {
		w.watcher.Close()
		return
	}

	slog.Debug("Stopping file watcher", "file", w.filePath)
	w.running = false
	close(w.stopChan)

	// Cancel any pending debounce timer
	w.debounceMutex.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.debounceMutex.Unlock()

	w.watcher.Close()
}

// watchLoop processes file system events until stopped.
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errorChan <- err:
			default:
			}

		case <-w.stopChan:
			return
		}
	}
}

// handleEvent filters directory events down to the watched file and starts
// or resets the debounce timer. Multiple events inside the window coalesce
// into a single emitted change.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.filePath {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	slog.Debug("Detected change on monitored file", "file", event.Name, "op", event.Op.String())

	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(debounceWindow, func() {
		w.emitDebouncedEvent()
	})
}

// emitDebouncedEvent emits a change event after the quiet window elapsed.
// Stop closes stopChan before taking the debounce mutex, so a timer that
// fires during shutdown either sends before Stop returns or not at all.
func (w *Watcher) emitDebouncedEvent() {
	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()

	select {
	case <-w.stopChan:
		return
	default:
	}

	event := monitoring.ChangeEvent{
		Path:      w.filePath,
		Timestamp: time.Now(),
	}

	select {
	case w.eventChan <- event:
		slog.Debug("Emitted change event after debounce", "file", event.Path)
	default:
		slog.Debug("Change event already pending, coalescing", "file", event.Path)
	}
}
