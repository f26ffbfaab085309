package monitoring

import (
	"time"

	"github.com/contre95/filepulse/src/monitor"
)

// detectorState tracks the last accepted observation. It is owned by the
// scheduler and only mutated inside the cycle gate.
type detectorState struct {
	lastModTime time.Time
	lastExists  bool
	primed      bool
}

// shouldEmit decides whether a fresh snapshot represents a new state worth
// publishing. Rules:
//
//   - The first observation after start always emits (cold start).
//   - A file disappearing after it was seen emits (existence transition).
//   - Otherwise the snapshot emits only when its modification time is
//     strictly newer than the last accepted one. Equal or older timestamps
//     are no-ops, which absorbs duplicate reads when polling and a change
//     notification fire for the same underlying write.
//
// If the filesystem clock moves backward nothing emits until a later write
// strictly exceeds the recorded timestamp. That is a documented limitation
// of the monotonic gate, not something worth special-casing.
func (d *detectorState) shouldEmit(snap monitor.Snapshot) bool {
	if !d.primed {
		return true
	}
	if !snap.Exists {
		return d.lastExists
	}
	return snap.LastModified.After(d.lastModTime)
}

// accept records an emitted snapshot as the new baseline. Accepting a
// snapshot of a missing file clears the recorded modification time, so a
// recreated file emits on its first reappearance regardless of its mtime.
func (d *detectorState) accept(snap monitor.Snapshot) {
	d.primed = true
	d.lastExists = snap.Exists
	d.lastModTime = snap.LastModified
}

// reset returns the detector to its cold-start state.
func (d *detectorState) reset() {
	*d = detectorState{}
}
