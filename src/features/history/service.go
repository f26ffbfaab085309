// Package history keeps a bounded record of accepted emissions so operators
// can see what the monitor published and when.
package history

import (
	"context"
	"time"

	"github.com/contre95/filepulse/src/monitor"
	"github.com/google/uuid"
)

// Entry is one recorded emission.
type Entry struct {
	ID           string    `json:"id"`
	Path         string    `json:"path"`
	Status       string    `json:"status"`
	SizeBytes    int64     `json:"sizeBytes"`
	Truncated    bool      `json:"truncated"`
	ModTime      time.Time `json:"modTime"`
	CapturedAt   time.Time `json:"capturedAt"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
}

// Store persists emission entries.
type Store interface {
	Record(ctx context.Context, entry Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

const recordTimeout = 2 * time.Second

// Service records emissions and serves recent history. It implements the
// publisher sink interface, so recording failures are logged upstream and
// never stop monitoring.
type Service struct {
	store Store
}

// NewService creates a new history service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Name identifies the sink in logs.
func (s *Service) Name() string {
	return "history"
}

// Update records an accepted emission. Bounded by a short timeout so a slow
// disk cannot stall the publisher.
func (s *Service) Update(snap monitor.Snapshot) error {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	return s.store.Record(ctx, Entry{
		ID:           uuid.New().String(),
		Path:         snap.Path,
		Status:       string(snap.Status),
		SizeBytes:    snap.SizeBytes,
		Truncated:    snap.Truncated,
		ModTime:      snap.LastModified,
		CapturedAt:   snap.CapturedAt,
		ErrorMessage: snap.ErrorMessage,
	})
}

// Recent returns the most recent emissions, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return s.store.Recent(ctx, limit)
}
