package history

import (
	"context"
	"testing"
	"time"

	"github.com/contre95/filepulse/src/monitor"
)

type memoryStore struct {
	recorded []Entry
}

func (m *memoryStore) Record(ctx context.Context, entry Entry) error {
	m.recorded = append(m.recorded, entry)
	return nil
}

func (m *memoryStore) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if len(m.recorded) < limit {
		limit = len(m.recorded)
	}
	return m.recorded[:limit], nil
}

func TestService_UpdateRecordsEmission(t *testing.T) {
	store := &memoryStore{}
	service := NewService(store)

	modTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	snap := monitor.Snapshot{
		Path:         "/var/log/app.txt",
		Exists:       true,
		LastModified: modTime,
		SizeBytes:    17,
		Truncated:    true,
		Status:       monitor.StatusTruncated,
		CapturedAt:   modTime.Add(time.Second),
	}

	if err := service.Update(snap); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(store.recorded) != 1 {
		t.Fatalf("recorded %d entries, want 1", len(store.recorded))
	}
	entry := store.recorded[0]
	if entry.ID == "" {
		t.Error("expected a generated entry ID")
	}
	if entry.Path != snap.Path || entry.SizeBytes != 17 || !entry.Truncated {
		t.Errorf("entry fields not carried over: %+v", entry)
	}
	if entry.Status != string(monitor.StatusTruncated) {
		t.Errorf("status = %q, want %q", entry.Status, monitor.StatusTruncated)
	}
	if !entry.ModTime.Equal(modTime) {
		t.Errorf("modTime = %v, want %v", entry.ModTime, modTime)
	}
}
