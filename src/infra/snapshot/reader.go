// Package snapshot implements the filesystem-backed snapshot reader.
package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/contre95/filepulse/src/monitor"
)

// Reader produces consistent snapshots of a single file. All failure modes
// are encoded in the returned snapshot status; Read never returns an error.
type Reader struct{}

// NewReader creates a new snapshot Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read captures the current state of the file at path, reading at most
// maxChars characters of content. The cap is counted in characters (runes),
// not bytes, so a multi-byte UTF-8 file truncates at the same point the
// reference display host would show. Size and modification time come from
// filesystem metadata, independent of how much content was read.
//
// The file is opened for shared read, so a concurrent writer holding the
// file open does not fail the cycle on platforms that allow concurrent read
// access.
func (r *Reader) Read(path string, maxChars int) monitor.Snapshot {
	capturedAt := time.Now()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return monitor.Snapshot{
				Path:         path,
				Exists:       false,
				Status:       monitor.StatusNotFound,
				ErrorMessage: fmt.Sprintf("file does not exist: %s", path),
				CapturedAt:   capturedAt,
			}
		}
		return errorSnapshot(path, capturedAt, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return errorSnapshot(path, capturedAt, err)
	}
	defer f.Close()

	content, truncated, err := readPrefix(f, maxChars)
	if err != nil {
		return errorSnapshot(path, capturedAt, err)
	}

	status := monitor.StatusComplete
	if truncated {
		status = monitor.StatusTruncated
	}

	return monitor.Snapshot{
		Path:         path,
		Exists:       true,
		LastModified: info.ModTime(),
		SizeBytes:    info.Size(),
		Content:      content,
		Truncated:    truncated,
		Status:       status,
		CapturedAt:   capturedAt,
	}
}

// readPrefix reads up to maxChars characters. Consuming exactly maxChars
// marks the content truncated: more data may remain behind the cap.
func readPrefix(f *os.File, maxChars int) (string, bool, error) {
	var sb strings.Builder
	br := bufio.NewReader(f)

	read := 0
	for read < maxChars {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			return sb.String(), false, nil
		}
		if err != nil {
			return "", false, err
		}
		sb.WriteRune(ch)
		read++
	}
	return sb.String(), read == maxChars && maxChars > 0, nil
}

// errorSnapshot converts a read failure into an error-flavored snapshot.
// Exists is reported false-safe: downstream sensors treat the snapshot as
// invalid regardless of whether the file was present when the failure hit.
func errorSnapshot(path string, capturedAt time.Time, err error) monitor.Snapshot {
	return monitor.Snapshot{
		Path:         path,
		Exists:       false,
		Status:       monitor.StatusError,
		ErrorMessage: err.Error(),
		CapturedAt:   capturedAt,
	}
}
