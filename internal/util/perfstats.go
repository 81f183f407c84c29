// Package util carries small ambient helpers shared across the engine.
package util

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats brackets the wall-clock duration of a phase of the engine
// (preprocessing, a single check), adapted from the teacher's memory/GC
// snapshot of the same name; here we only need elapsed time, which is what
// the result record's `preprocessing_time`/`check_time` fields carry.
type PerfStats struct {
	start time.Time
}

// NewPerfStats starts a new timing snapshot.
func NewPerfStats() *PerfStats {
	return &PerfStats{start: time.Now()}
}

// Elapsed returns the time since this snapshot was created, in seconds.
func (p *PerfStats) Elapsed() float64 {
	return time.Since(p.start).Seconds()
}

// Log emits a debug-level log line with the elapsed time prefixed by label.
func (p *PerfStats) Log(label string) {
	log.Debugf("%s took %0.6fs", label, p.Elapsed())
}
