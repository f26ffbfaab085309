// Package metrics exposes Prometheus instrumentation for the monitor loop.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Trigger labels for read cycles.
const (
	TriggerColdStart    = "cold_start"
	TriggerTimer        = "timer"
	TriggerNotification = "notification"
	TriggerManual       = "manual"
)

// Recorder holds the collectors for the monitoring pipeline. A private
// registry keeps the scrape surface limited to what this service owns.
type Recorder struct {
	registry *prometheus.Registry

	Cycles          *prometheus.CounterVec
	Emits           prometheus.Counter
	Suppressed      prometheus.Counter
	DroppedTriggers prometheus.Counter
	ReadErrors      prometheus.Counter
	WatcherRestarts prometheus.Counter
	Running         prometheus.Gauge
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		Cycles: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "filepulse_read_cycles_total",
			Help: "Completed read cycles by trigger source.",
		}, []string{"trigger"}),
		Emits: factory.NewCounter(prometheus.CounterOpts{
			Name: "filepulse_emits_total",
			Help: "Snapshots accepted by the change detector and published.",
		}),
		Suppressed: factory.NewCounter(prometheus.CounterOpts{
			Name: "filepulse_suppressed_total",
			Help: "Snapshots suppressed by the monotonic change gate.",
		}),
		DroppedTriggers: factory.NewCounter(prometheus.CounterOpts{
			Name: "filepulse_dropped_triggers_total",
			Help: "Triggers dropped because a read cycle was already in flight.",
		}),
		ReadErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "filepulse_read_errors_total",
			Help: "Read cycles that produced an error snapshot.",
		}),
		WatcherRestarts: factory.NewCounter(prometheus.CounterOpts{
			Name: "filepulse_watcher_restarts_total",
			Help: "Notification subscription restarts after a watcher failure.",
		}),
		Running: factory.NewGauge(prometheus.GaugeOpts{
			Name: "filepulse_monitor_running",
			Help: "Whether the monitor scheduler is running (1) or stopped (0).",
		}),
	}
}

// Handler returns the scrape handler for the private registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
