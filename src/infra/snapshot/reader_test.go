package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contre95/filepulse/src/monitor"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watched.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestRead_Complete(t *testing.T) {
	content := "line1\nline2\nline3"
	path := writeFile(t, content)

	snap := NewReader().Read(path, 1000)

	if !snap.Exists {
		t.Fatal("expected snapshot to report existing file")
	}
	if snap.Status != monitor.StatusComplete {
		t.Errorf("status = %q, want %q", snap.Status, monitor.StatusComplete)
	}
	if snap.Content != content {
		t.Errorf("content = %q, want %q", snap.Content, content)
	}
	if snap.SizeBytes != 17 {
		t.Errorf("sizeBytes = %d, want 17", snap.SizeBytes)
	}
	if snap.Truncated {
		t.Error("expected content not to be truncated")
	}
	if snap.LastModified.IsZero() {
		t.Error("expected lastModified from file metadata")
	}
	if snap.CapturedAt.IsZero() {
		t.Error("expected capturedAt to be set")
	}
}

func TestRead_Truncated(t *testing.T) {
	path := writeFile(t, "0123456789")

	snap := NewReader().Read(path, 4)

	if snap.Status != monitor.StatusTruncated {
		t.Errorf("status = %q, want %q", snap.Status, monitor.StatusTruncated)
	}
	if !snap.Truncated {
		t.Error("expected truncated flag")
	}
	if snap.Content != "0123" {
		t.Errorf("content = %q, want %q", snap.Content, "0123")
	}
	// Size comes from metadata, not from how much content was read.
	if snap.SizeBytes != 10 {
		t.Errorf("sizeBytes = %d, want 10", snap.SizeBytes)
	}
}

func TestRead_CapCountsCharactersNotBytes(t *testing.T) {
	// Four characters, six bytes.
	path := writeFile(t, "héllo")

	snap := NewReader().Read(path, 3)

	if got := []rune(snap.Content); len(got) != 3 {
		t.Errorf("content rune length = %d, want 3", len(got))
	}
	if snap.Content != "hél" {
		t.Errorf("content = %q, want %q", snap.Content, "hél")
	}
	if snap.Status != monitor.StatusTruncated {
		t.Errorf("status = %q, want %q", snap.Status, monitor.StatusTruncated)
	}
}

func TestRead_ExactCapReportsTruncated(t *testing.T) {
	// Consuming exactly the cap marks the snapshot truncated: the reader
	// does not look past the cap to find out whether more data remains.
	path := writeFile(t, "abcd")

	snap := NewReader().Read(path, 4)

	if snap.Status != monitor.StatusTruncated {
		t.Errorf("status = %q, want %q", snap.Status, monitor.StatusTruncated)
	}
	if snap.Content != "abcd" {
		t.Errorf("content = %q, want %q", snap.Content, "abcd")
	}
}

func TestRead_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	snap := NewReader().Read(path, 1000)

	if snap.Exists {
		t.Error("expected snapshot to report missing file")
	}
	if snap.Status != monitor.StatusNotFound {
		t.Errorf("status = %q, want %q", snap.Status, monitor.StatusNotFound)
	}
	if snap.Content != "" {
		t.Errorf("content = %q, want empty for a missing file", snap.Content)
	}
	if !strings.Contains(snap.ErrorMessage, path) {
		t.Errorf("errorMessage = %q, want it to name the path", snap.ErrorMessage)
	}
}

func TestRead_ErrorSnapshotInvariants(t *testing.T) {
	// A directory stats and opens fine but fails on read, exercising the
	// error path without depending on permission bits.
	dir := t.TempDir()

	snap := NewReader().Read(dir, 1000)

	if snap.Status != monitor.StatusError {
		t.Fatalf("status = %q, want %q", snap.Status, monitor.StatusError)
	}
	if snap.ErrorMessage == "" {
		t.Error("expected a non-empty errorMessage on error status")
	}
	if snap.Exists {
		t.Error("expected error snapshot to be false-safe on existence")
	}
	if snap.Content != "" {
		t.Error("expected no partial content on error")
	}
}

func TestRead_EmptyFile(t *testing.T) {
	path := writeFile(t, "")

	snap := NewReader().Read(path, 1000)

	if snap.Status != monitor.StatusComplete {
		t.Errorf("status = %q, want %q", snap.Status, monitor.StatusComplete)
	}
	if snap.Content != "" {
		t.Errorf("content = %q, want empty", snap.Content)
	}
	if snap.SizeBytes != 0 {
		t.Errorf("sizeBytes = %d, want 0", snap.SizeBytes)
	}
}
