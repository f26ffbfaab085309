// Package monitoring implements the dual-signal file monitor: a polling
// timer and a best-effort OS change notification source, reconciled into a
// single stream of published snapshots.
package monitoring

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/contre95/filepulse/src/features/config"
	"github.com/contre95/filepulse/src/features/metrics"
	"github.com/contre95/filepulse/src/monitor"
	"github.com/google/uuid"
)

// State of the scheduler lifecycle.
type State string

const (
	StateStopped  State = "stopped"
	StateStarting State = "starting"
	StateRunning  State = "running"
	StateStopping State = "stopping"
)

const resubscribeBackoff = 2 * time.Second

// Reader produces file snapshots. All failures are encoded in the snapshot.
type Reader interface {
	Read(path string, maxChars int) monitor.Snapshot
}

// Publisher receives accepted emissions.
type Publisher interface {
	Publish(snap monitor.Snapshot)
}

// Service drives the read-and-emit loop from two independent triggers: a
// fixed-interval timer and debounced change notifications. All triggers
// funnel through a single try-acquire gate, so at most one read cycle is in
// flight at any time; a trigger arriving while a cycle runs is dropped, not
// queued.
type Service struct {
	cfg            *config.Manager
	reader         Reader
	publisher      Publisher
	watcherFactory WatcherFactory
	recorder       *metrics.Recorder
	resubBackoff   time.Duration

	// lifecycle, guarded by mu
	mu        sync.Mutex
	state     State
	sessionID string
	startedAt time.Time
	stopChan  chan struct{}
	doneChan  chan struct{}

	// cycle state, mutated only while holding gate
	gate           sync.Mutex
	det            detectorState
	cfgErrReported bool
}

// NewService creates a new monitoring service. The watcher factory may be
// nil, in which case the service runs timer-only.
func NewService(cfg *config.Manager, reader Reader, publisher Publisher, watcherFactory WatcherFactory, recorder *metrics.Recorder) *Service {
	return &Service{
		cfg:            cfg,
		reader:         reader,
		publisher:      publisher,
		watcherFactory: watcherFactory,
		recorder:       recorder,
		resubBackoff:   resubscribeBackoff,
		state:          StateStopped,
	}
}

// Start begins monitoring: one unconditional cold-start cycle, then the
// interval timer, then the best-effort notification subscription. Starting
// an already running service is a no-op. The context cancels monitoring the
// same way Stop does.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateStopped {
		slog.Info("Monitor already running, ignoring start", "state", s.state)
		s.mu.Unlock()
		return
	}
	s.state = StateStarting
	s.sessionID = uuid.New().String()
	s.startedAt = time.Now()
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})

	s.gate.Lock()
	s.det.reset()
	s.cfgErrReported = false
	s.gate.Unlock()

	cfg := s.cfg.Get().Monitor
	s.state = StateRunning
	s.mu.Unlock()

	s.recorder.Running.Set(1)
	slog.Info("Monitor started",
		"session", s.sessionID,
		"path", cfg.Path,
		"interval_seconds", cfg.PollIntervalSeconds,
		"continuous", cfg.Continuous,
	)

	// Cold start: read immediately, independent of the timer interval.
	s.runCycle(metrics.TriggerColdStart)

	go s.loop(ctx, s.stopChan, s.doneChan)
}

// Stop halts monitoring. It is idempotent and safe to call concurrently
// with an in-flight cycle: the cycle finishes, no further cycles start, and
// the timer and notification handles are released before Stop returns.
func (s *Service) Stop() {
	s.mu.Lock()
	if s.state != StateRunning {
		slog.Debug("Monitor not running, ignoring stop", "state", s.state)
		s.mu.Unlock()
		return
	}
	s.state = StateStopping
	stopChan := s.stopChan
	doneChan := s.doneChan
	s.mu.Unlock()

	close(stopChan)
	<-doneChan

	s.mu.Lock()
	s.state = StateStopped
	s.mu.Unlock()

	s.recorder.Running.Set(0)
	slog.Info("Monitor stopped", "session", s.sessionID)
}

// TriggerNow requests an immediate read cycle, subject to the same gate as
// every other trigger.
func (s *Service) TriggerNow() {
	s.runCycle(metrics.TriggerManual)
}

// State returns the current lifecycle state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Status describes the scheduler for the status endpoint.
type Status struct {
	State               State     `json:"state"`
	SessionID           string    `json:"sessionId,omitempty"`
	StartedAt           time.Time `json:"startedAt,omitempty"`
	Path                string    `json:"path"`
	PollIntervalSeconds int       `json:"pollIntervalSeconds"`
	Continuous          bool      `json:"continuous"`
}

// Status returns the scheduler state together with the active monitor
// configuration.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.cfg.Get().Monitor
	status := Status{
		State:               s.state,
		Path:                cfg.Path,
		PollIntervalSeconds: cfg.PollIntervalSeconds,
		Continuous:          cfg.Continuous,
	}
	if s.state == StateRunning {
		status.SessionID = s.sessionID
		status.StartedAt = s.startedAt
	}
	return status
}

// loop owns the timer and the notification subscription for one monitoring
// session. The subscription is best-effort: failures degrade to timer-only
// operation and are retried with a fixed backoff, never surfaced to the
// caller.
func (s *Service) loop(ctx context.Context, stopChan chan struct{}, doneChan chan struct{}) {
	cfg := s.cfg.Get().Monitor

	ticker := time.NewTicker(time.Duration(cfg.PollIntervalSeconds) * time.Second)
	defer ticker.Stop()

	var w Watcher
	var events <-chan ChangeEvent
	var werrs <-chan error
	var resub <-chan time.Time
	ctxDone := ctx.Done()

	// Initial subscription is best-effort: on failure the monitor keeps
	// polling and retries the subscription on the same backoff used after
	// an established watcher fails.
	if cfg.Continuous {
		w, events, werrs = s.subscribe(cfg.Path)
		if w == nil {
			resub = time.After(s.resubBackoff)
		}
	}

	defer func() {
		if w != nil {
			w.Stop()
		}
		close(doneChan)
	}()

	for {
		select {
		case <-ticker.C:
			s.runCycle(metrics.TriggerTimer)

		case <-events:
			s.runCycle(metrics.TriggerNotification)

		case err := <-werrs:
			slog.Debug("Watcher failed, falling back to timer-only", "error", err)
			w.Stop()
			w, events, werrs = nil, nil, nil
			resub = time.After(s.resubBackoff)

		case <-resub:
			resub = nil
			w, events, werrs = s.subscribe(s.cfg.Get().Monitor.Path)
			if w == nil {
				resub = time.After(s.resubBackoff)
			} else {
				s.recorder.WatcherRestarts.Inc()
				slog.Debug("Watcher resubscribed")
			}

		case <-ctxDone:
			slog.Info("Monitor context cancelled, stopping")
			ctxDone = nil
			go s.Stop()

		case <-stopChan:
			return
		}
	}
}

// subscribe attempts to build and start a watcher for path. The file must
// exist for the subscription to be attempted; a missing file or any failure
// returns nil and the caller keeps polling.
func (s *Service) subscribe(path string) (Watcher, <-chan ChangeEvent, <-chan error) {
	if s.watcherFactory == nil || path == "" {
		return nil, nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		slog.Debug("Monitored file not present, skipping notification subscription", "path", path)
		return nil, nil, nil
	}

	w, err := s.watcherFactory()
	if err != nil {
		slog.Debug("Failed to create watcher, continuing timer-only", "error", err)
		return nil, nil, nil
	}
	if err := w.Start(path); err != nil {
		slog.Debug("Failed to start watcher, continuing timer-only", "path", path, "error", err)
		w.Stop()
		return nil, nil, nil
	}
	return w, w.Events(), w.Errors()
}

// runCycle performs one read-and-maybe-emit cycle. The try-acquire gate
// guarantees at most one cycle in flight; the detector baseline is only
// touched while holding it.
func (s *Service) runCycle(trigger string) {
	if !s.gate.TryLock() {
		s.recorder.DroppedTriggers.Inc()
		slog.Debug("Read cycle already in flight, dropping trigger", "trigger", trigger)
		return
	}
	defer s.gate.Unlock()

	cfg := s.cfg.Get()
	path := cfg.Monitor.Path
	if path == "" {
		s.reportMissingConfiguration()
		return
	}
	s.cfgErrReported = false

	snap := s.reader.Read(path, cfg.Monitor.MaxContentLength)
	s.recorder.Cycles.WithLabelValues(trigger).Inc()
	if snap.Status == monitor.StatusError {
		s.recorder.ReadErrors.Inc()
	}

	if !s.det.shouldEmit(snap) {
		s.recorder.Suppressed.Inc()
		slog.Debug("Snapshot suppressed", "trigger", trigger, "mod_time", snap.LastModified)
		return
	}

	s.det.accept(snap)
	s.recorder.Emits.Inc()
	s.publisher.Publish(snap)
	slog.Debug("Snapshot emitted",
		"trigger", trigger,
		"status", snap.Status,
		"size_bytes", snap.SizeBytes,
		"truncated", snap.Truncated,
	)
}

// reportMissingConfiguration emits a single explanatory error snapshot and
// performs no reads until a path is configured.
func (s *Service) reportMissingConfiguration() {
	if s.cfgErrReported {
		return
	}
	s.cfgErrReported = true

	snap := monitor.Snapshot{
		Exists:       false,
		Status:       monitor.StatusError,
		ErrorMessage: "no file path configured",
		CapturedAt:   time.Now(),
	}
	s.det.accept(snap)
	s.publisher.Publish(snap)
	slog.Warn("No file path configured, monitoring idle until reconfigured")
}
