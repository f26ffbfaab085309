package monitoring

import "time"

// Watcher defines the interface for best-effort file change notification
// sources. Implementations deliver debounced change events for a single
// file and surface internal failures on Errors so the scheduler can
// resubscribe.
type Watcher interface {
	Start(path string) error
	Events() <-chan ChangeEvent
	Errors() <-chan error
	Stop()
}

// WatcherFactory builds a fresh watcher. The scheduler calls it once at
// start and again on every resubscription attempt after a watcher failure.
type WatcherFactory func() (Watcher, error)

// ChangeEvent signals that the watched file changed on disk.
type ChangeEvent struct {
	Path      string
	Timestamp time.Time
}
