// Package sensors turns accepted snapshots into the values the display
// layer consumes: the publisher that fans accepted emissions out to sinks,
// and the four derived sensor values.
package sensors

import (
	"log/slog"
	"sync"

	"github.com/contre95/filepulse/src/monitor"
)

// Sink receives every accepted emission. Implementations must be fast; a
// failing sink is logged and never stops monitoring.
type Sink interface {
	Name() string
	Update(snap monitor.Snapshot) error
}

// Publisher is the single-writer sink for accepted snapshots. The scheduler
// pushes every accepted emission through Publish; late-attaching observers
// pull the latest snapshot through Latest without waiting for the next
// change.
type Publisher struct {
	mu     sync.RWMutex
	latest *monitor.Snapshot
	sinks  []Sink
}

// NewPublisher creates a Publisher with its sinks registered once at
// construction.
func NewPublisher(sinks ...Sink) *Publisher {
	return &Publisher{sinks: sinks}
}

// Publish stores the snapshot as the latest state and forwards it to every
// registered sink. Sink failures are logged and skipped.
func (p *Publisher) Publish(snap monitor.Snapshot) {
	p.mu.Lock()
	p.latest = &snap
	p.mu.Unlock()

	for _, sink := range p.sinks {
		if err := sink.Update(snap); err != nil {
			slog.Warn("Sink failed to process snapshot", "sink", sink.Name(), "error", err)
		}
	}
}

// Latest returns the most recently published snapshot, if any.
func (p *Publisher) Latest() (monitor.Snapshot, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.latest == nil {
		return monitor.Snapshot{}, false
	}
	return *p.latest, true
}
