package sensors

import (
	"errors"
	"testing"

	"github.com/contre95/filepulse/src/monitor"
)

type recordingSink struct {
	name     string
	received []monitor.Snapshot
	fail     bool
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Update(snap monitor.Snapshot) error {
	s.received = append(s.received, snap)
	if s.fail {
		return errors.New("sink failure")
	}
	return nil
}

func TestPublisher_LatestBeforeFirstPublish(t *testing.T) {
	p := NewPublisher()

	if _, ok := p.Latest(); ok {
		t.Error("expected no latest snapshot before the first publish")
	}
}

func TestPublisher_PushAndPull(t *testing.T) {
	sink := &recordingSink{name: "test"}
	p := NewPublisher(sink)

	snap := validSnapshot("hello")
	p.Publish(snap)

	latest, ok := p.Latest()
	if !ok {
		t.Fatal("expected a latest snapshot after publish")
	}
	if latest.Content != "hello" {
		t.Errorf("latest content = %q, want %q", latest.Content, "hello")
	}
	if len(sink.received) != 1 {
		t.Fatalf("sink received %d snapshots, want 1", len(sink.received))
	}
}

func TestPublisher_FailingSinkDoesNotStopOthers(t *testing.T) {
	failing := &recordingSink{name: "failing", fail: true}
	healthy := &recordingSink{name: "healthy"}
	p := NewPublisher(failing, healthy)

	p.Publish(validSnapshot("hello"))

	if len(healthy.received) != 1 {
		t.Errorf("healthy sink received %d snapshots, want 1", len(healthy.received))
	}

	// The publisher keeps working after a sink failure.
	p.Publish(validSnapshot("world"))
	latest, _ := p.Latest()
	if latest.Content != "world" {
		t.Errorf("latest content = %q, want %q", latest.Content, "world")
	}
}
