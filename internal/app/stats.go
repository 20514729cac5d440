package app

import (
	"sync/atomic"
	"time"
)

// Stats counts what a session did. Counters are safe to read from any
// goroutine.
type Stats struct {
	events  atomic.Uint64
	ignored atomic.Uint64
	intents atomic.Uint64
	frames  atomic.Uint64
	reloads atomic.Uint64

	renderTotalNs atomic.Int64
	startTime     time.Time
}

// NewStats creates a stats tracker starting now.
func NewStats() *Stats {
	return &Stats{startTime: time.Now()}
}

// RecordEvent counts a backend event. Ignored events produced no intent
// and no frame.
func (s *Stats) RecordEvent(ignored bool) {
	s.events.Add(1)
	if ignored {
		s.ignored.Add(1)
	}
}

// RecordIntent counts an applied edit intent.
func (s *Stats) RecordIntent() {
	s.intents.Add(1)
}

// RecordFrame counts a rendered frame and its duration.
func (s *Stats) RecordFrame(d time.Duration) {
	s.frames.Add(1)
	s.renderTotalNs.Add(d.Nanoseconds())
}

// RecordReload counts a configuration reload.
func (s *Stats) RecordReload() {
	s.reloads.Add(1)
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Events    uint64
	Ignored   uint64
	Intents   uint64
	Frames    uint64
	Reloads   uint64
	AvgRender time.Duration
	Uptime    time.Duration
}

// Snapshot returns the current counters.
func (s *Stats) Snapshot() StatsSnapshot {
	snap := StatsSnapshot{
		Events:  s.events.Load(),
		Ignored: s.ignored.Load(),
		Intents: s.intents.Load(),
		Frames:  s.frames.Load(),
		Reloads: s.reloads.Load(),
		Uptime:  time.Since(s.startTime),
	}
	if snap.Frames > 0 {
		snap.AvgRender = time.Duration(s.renderTotalNs.Load() / int64(snap.Frames))
	}
	return snap
}
