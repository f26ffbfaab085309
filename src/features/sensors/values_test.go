package sensors

import (
	"strings"
	"testing"
	"time"

	"github.com/contre95/filepulse/src/monitor"
)

func validSnapshot(content string) monitor.Snapshot {
	return monitor.Snapshot{
		Path:         "/tmp/watched.txt",
		Exists:       true,
		LastModified: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		SizeBytes:    int64(len(content)),
		Content:      content,
		Status:       monitor.StatusComplete,
		CapturedAt:   time.Now(),
	}
}

func TestDerive_LineCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"three lines", "line1\nline2\nline3", 3},
		{"single line", "hello", 1},
		// Splitting on '\n' counts a trailing empty segment. The display
		// layer expects this rule as-is.
		{"trailing newline counts extra line", "a\nb\n", 3},
		{"empty content", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(validSnapshot(tt.content), 100).LineCount
			if got != tt.want {
				t.Errorf("lineCount(%q) = %d, want %d", tt.content, got, tt.want)
			}
		})
	}
}

func TestDerive_InvalidSnapshotResetsValues(t *testing.T) {
	snap := monitor.Snapshot{
		Path:         "/tmp/watched.txt",
		Exists:       false,
		Status:       monitor.StatusError,
		ErrorMessage: "permission denied",
	}

	values := Derive(snap, 100)

	if values.SizeBytes != 0 {
		t.Errorf("sizeBytes = %d, want 0", values.SizeBytes)
	}
	if values.LineCount != 0 {
		t.Errorf("lineCount = %d, want 0", values.LineCount)
	}
	if values.Preview != ErrorPreview {
		t.Errorf("preview = %q, want %q", values.Preview, ErrorPreview)
	}
	if values.StatusText != "permission denied" {
		t.Errorf("statusText = %q, want the raw error message", values.StatusText)
	}
}

func TestDerive_EmptyContentPreviewSentinel(t *testing.T) {
	snap := validSnapshot("")
	snap.SizeBytes = 0

	values := Derive(snap, 100)

	if values.Preview != EmptyFilePreview {
		t.Errorf("preview = %q, want %q", values.Preview, EmptyFilePreview)
	}
}

func TestDerive_PreviewTruncation(t *testing.T) {
	content := strings.Repeat("x", 250)

	values := Derive(validSnapshot(content), 100)

	if len(values.Preview) != 100 {
		t.Errorf("preview length = %d, want 100", len(values.Preview))
	}

	short := Derive(validSnapshot("short"), 100)
	if short.Preview != "short" {
		t.Errorf("preview = %q, want %q", short.Preview, "short")
	}
}

func TestDerive_StatusText(t *testing.T) {
	snap := validSnapshot("hello world")

	values := Derive(snap, 100)

	if !strings.HasPrefix(values.StatusText, "Complete (modified 2025-06-01 12:00:00") {
		t.Errorf("statusText = %q, want Complete with formatted timestamp", values.StatusText)
	}
	if !strings.Contains(values.StatusText, "11 B") {
		t.Errorf("statusText = %q, want human-readable size suffix", values.StatusText)
	}

	snap.Status = monitor.StatusTruncated
	truncated := Derive(snap, 100)
	if !strings.HasPrefix(truncated.StatusText, "Truncated") {
		t.Errorf("statusText = %q, want Truncated prefix", truncated.StatusText)
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}

	for _, tt := range tests {
		if got := humanSize(tt.bytes); got != tt.want {
			t.Errorf("humanSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
