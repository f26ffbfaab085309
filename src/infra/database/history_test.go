package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/contre95/filepulse/src/features/history"
	"github.com/google/uuid"
)

func newTestStore(t *testing.T, maxRows int) *SqliteHistory {
	t.Helper()
	store, err := NewSqliteHistory(filepath.Join(t.TempDir(), "history.db"), maxRows)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testEntry(capturedAt time.Time) history.Entry {
	return history.Entry{
		ID:         uuid.New().String(),
		Path:       "/var/log/app.txt",
		Status:     "complete",
		SizeBytes:  42,
		ModTime:    capturedAt.Add(-1 * time.Second),
		CapturedAt: capturedAt,
	}
}

func TestSqliteHistory_RecordAndRecent(t *testing.T) {
	store := newTestStore(t, 100)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if err := store.Record(ctx, testEntry(base.Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatalf("failed to record entry: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("failed to query history: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// Newest first.
	if !entries[0].CapturedAt.After(entries[1].CapturedAt) {
		t.Errorf("entries not ordered newest first: %v then %v", entries[0].CapturedAt, entries[1].CapturedAt)
	}
	if entries[0].SizeBytes != 42 || entries[0].Status != "complete" {
		t.Errorf("unexpected entry round-trip: %+v", entries[0])
	}
}

func TestSqliteHistory_PrunesBeyondCap(t *testing.T) {
	store := newTestStore(t, 2)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if err := store.Record(ctx, testEntry(base.Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatalf("failed to record entry: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("failed to query history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries after pruning, want 2", len(entries))
	}
	if !entries[0].CapturedAt.Equal(base.Add(4 * time.Second)) {
		t.Errorf("newest entry capturedAt = %v, want %v", entries[0].CapturedAt, base.Add(4*time.Second))
	}
}

func TestSqliteHistory_EmptyStore(t *testing.T) {
	store := newTestStore(t, 10)

	entries, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("failed to query empty history: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries from an empty store, want 0", len(entries))
	}
}
