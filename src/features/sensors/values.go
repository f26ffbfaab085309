package sensors

import (
	"fmt"
	"strings"

	"github.com/contre95/filepulse/src/monitor"
)

// Sentinel previews shown instead of content.
const (
	EmptyFilePreview = "[Empty File]"
	ErrorPreview     = "[File Error]"
)

// Values are the four observable values derived from the latest snapshot.
type Values struct {
	SizeBytes  int64  `json:"sizeBytes"`
	LineCount  int    `json:"lineCount"`
	Preview    string `json:"preview"`
	StatusText string `json:"statusText"`
}

// Derive computes the sensor values for a snapshot. Invalid snapshots
// (missing file or read error) reset size and line count to 0, show the
// error preview sentinel and surface the raw error message as status.
func Derive(snap monitor.Snapshot, previewLength int) Values {
	if !snap.Valid() {
		return Values{
			SizeBytes:  0,
			LineCount:  0,
			Preview:    ErrorPreview,
			StatusText: snap.ErrorMessage,
		}
	}

	return Values{
		SizeBytes:  snap.SizeBytes,
		LineCount:  lineCount(snap.Content),
		Preview:    preview(snap.Content, previewLength),
		StatusText: statusText(snap),
	}
}

// lineCount counts lines the way the reference display host does: the
// number of segments produced by splitting on '\n'. Content ending in a
// newline therefore counts a trailing empty line. Downstream displays
// expect this exact rule, so it is preserved rather than fixed.
func lineCount(content string) int {
	return len(strings.Split(content, "\n"))
}

// preview truncates content to at most length characters, substituting a
// sentinel for empty content.
func preview(content string, length int) string {
	if content == "" {
		return EmptyFilePreview
	}
	runes := []rune(content)
	if len(runes) <= length {
		return content
	}
	return string(runes[:length])
}

// statusText formats the base status with the modification time and a
// human-readable size suffix.
func statusText(snap monitor.Snapshot) string {
	base := "Complete"
	if snap.Status == monitor.StatusTruncated {
		base = "Truncated"
	}
	return fmt.Sprintf("%s (modified %s, %s)",
		base,
		snap.LastModified.Format("2006-01-02 15:04:05"),
		humanSize(snap.SizeBytes),
	)
}

// humanSize renders a byte count with a binary unit suffix.
func humanSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
