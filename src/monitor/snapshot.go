// Package monitor holds the domain model shared by the monitoring pipeline:
// the immutable file snapshot produced by each read cycle.
package monitor

import "time"

// Status describes the outcome of a single read cycle.
type Status string

const (
	StatusComplete  Status = "complete"
	StatusTruncated Status = "truncated"
	StatusNotFound  Status = "not_found"
	StatusError     Status = "error"
)

// Snapshot is a point-in-time read of the monitored file. It is a pure
// value: produced fresh on every read, never mutated afterwards, and freely
// shared between the scheduler, publisher and sensor readers without
// synchronization.
type Snapshot struct {
	Path         string    `json:"path"`
	Exists       bool      `json:"exists"`
	LastModified time.Time `json:"lastModified"`
	SizeBytes    int64     `json:"sizeBytes"`
	Content      string    `json:"content"`
	Truncated    bool      `json:"truncated"`
	Status       Status    `json:"status"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	CapturedAt   time.Time `json:"capturedAt"`
}

// Valid reports whether the snapshot carries readable file content, i.e. the
// file existed and the read did not fail.
func (s Snapshot) Valid() bool {
	return s.Exists && s.Status != StatusError
}
