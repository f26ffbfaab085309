// Package database provides the SQLite-backed emission history store.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/contre95/filepulse/src/features/history"
	_ "github.com/mattn/go-sqlite3"
)

// SqliteHistory is a SQLite implementation of the history Store interface.
type SqliteHistory struct {
	db      *sql.DB
	maxRows int
}

// NewSqliteHistory creates a new SqliteHistory bounded to maxRows entries.
func NewSqliteHistory(path string, maxRows int) (*SqliteHistory, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := createTables(db); err != nil {
		return nil, err
	}

	return &SqliteHistory{db: db, maxRows: maxRows}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS emissions (
			id TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			status TEXT NOT NULL,
			size_bytes INTEGER,
			truncated BOOLEAN DEFAULT FALSE,
			mod_time TEXT,
			captured_at TEXT NOT NULL,
			error TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_emissions_captured_at
			ON emissions(captured_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// Record inserts an emission and prunes entries beyond the row cap.
func (s *SqliteHistory) Record(ctx context.Context, entry history.Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO emissions (id, path, status, size_bytes, truncated, mod_time, captured_at, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Path,
		entry.Status,
		entry.SizeBytes,
		entry.Truncated,
		entry.ModTime.Format(time.RFC3339Nano),
		entry.CapturedAt.Format(time.RFC3339Nano),
		entry.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to record emission: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		DELETE FROM emissions WHERE id NOT IN (
			SELECT id FROM emissions ORDER BY captured_at DESC LIMIT ?
		)`, s.maxRows)
	if err != nil {
		return fmt.Errorf("failed to prune emission history: %w", err)
	}
	return nil
}

// Recent returns the most recent emissions, newest first.
func (s *SqliteHistory) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, path, status, size_bytes, truncated, mod_time, captured_at, error
		FROM emissions ORDER BY captured_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query emission history: %w", err)
	}
	defer rows.Close()

	var entries []history.Entry
	for rows.Next() {
		var entry history.Entry
		var modTime, capturedAt string
		if err := rows.Scan(
			&entry.ID,
			&entry.Path,
			&entry.Status,
			&entry.SizeBytes,
			&entry.Truncated,
			&modTime,
			&capturedAt,
			&entry.ErrorMessage,
		); err != nil {
			return nil, fmt.Errorf("failed to scan emission row: %w", err)
		}
		entry.ModTime, _ = time.Parse(time.RFC3339Nano, modTime)
		entry.CapturedAt, _ = time.Parse(time.RFC3339Nano, capturedAt)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Close releases the underlying database handle.
func (s *SqliteHistory) Close() error {
	return s.db.Close()
}
