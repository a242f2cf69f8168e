// Package stopwatch provides split-interval timing with named checkpoints.
package stopwatch

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Lap is one recorded checkpoint interval.
type Lap struct {
	Label    string
	Duration time.Duration
}

// Stopwatch measures a sequence of intervals. Unlike a tic/toc timer it is
// always running: each Checkpoint reports the interval since the previous
// one and starts the next.
type Stopwatch struct {
	start time.Time
	prev  time.Time
	laps  []Lap
	on    bool
	out   io.Writer
}

// New returns a stopwatch running from the moment of creation.
func New() *Stopwatch {
	now := time.Now()
	return &Stopwatch{start: now, prev: now, on: true, out: os.Stderr}
}

// Conditional returns a stopwatch that is inert unless the condition is
// true, so checkpoint calls can stay in place in cold paths.
func Conditional(condition bool) *Stopwatch {
	now := time.Now()
	return &Stopwatch{start: now, prev: now, on: condition, out: os.Stderr}
}

// SetOutput redirects checkpoint lines, which go to os.Stderr by default.
func (s *Stopwatch) SetOutput(w io.Writer) {
	s.out = w
}

// Checkpoint records and reports the interval since the previous checkpoint
// (or since creation) under the given label, then starts the next interval.
// Returns zero on an inert stopwatch.
func (s *Stopwatch) Checkpoint(label string) time.Duration {
	if !s.on {
		return 0
	}
	now := time.Now()
	d := now.Sub(s.prev)
	s.prev = now
	s.laps = append(s.laps, Lap{Label: label, Duration: d})
	fmt.Fprintf(s.out, "%s: %v\n", label, d)
	return d
}

// Laps returns the checkpoints recorded so far, in order.
func (s *Stopwatch) Laps() []Lap {
	return s.laps
}

// Total returns the time since creation or the last Reset.
func (s *Stopwatch) Total() time.Duration {
	if !s.on {
		return 0
	}
	return time.Since(s.start)
}

// Reset clears recorded laps and restarts the stopwatch.
func (s *Stopwatch) Reset() {
	if !s.on {
		return
	}
	now := time.Now()
	s.start = now
	s.prev = now
	s.laps = nil
}
