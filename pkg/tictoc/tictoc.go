// Package tictoc provides MATLAB-style tic/toc elapsed-time measurement.
package tictoc

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultPrecision is the number of fractional digits a verbose report
// rounds seconds to, unless overridden with SetPrecision.
const DefaultPrecision = 2

// ErrAlreadyRunning is returned by Tic when the timer is already running.
var ErrAlreadyRunning = errors.New("timer is already running")

// ErrNotRunning is returned by Toc when the timer was never tic-ced.
var ErrNotRunning = errors.New("timer is not running")

// Timer is a two-state stopwatch. An unnamed timer returns elapsed durations
// from Toc; a named timer is verbose and reports them to its output writer
// instead. A Timer is reusable across any number of Tic/Toc cycles, but is
// not safe for concurrent use.
type Timer struct {
	label     string
	verbose   bool
	precision int // fractional digits in reports; negative means full precision
	out       io.Writer
	start     time.Time
	running   bool
}

// New returns an unnamed, non-verbose timer.
func New() *Timer {
	return &Timer{precision: DefaultPrecision, out: os.Stderr}
}

// NewNamed returns a verbose timer that reports under the given label.
func NewNamed(label string) *Timer {
	return &Timer{label: label, verbose: true, precision: DefaultPrecision, out: os.Stderr}
}

// SetPrecision sets the number of fractional digits in verbose reports.
// A negative value disables rounding and prints full precision.
func (t *Timer) SetPrecision(digits int) {
	t.precision = digits
}

// SetOutput redirects verbose reports, which go to os.Stderr by default.
func (t *Timer) SetOutput(w io.Writer) {
	t.out = w
}

// Label returns the timer's label, empty for an unnamed timer.
func (t *Timer) Label() string {
	return t.label
}

// Running reports whether the timer is between a Tic and a Toc.
func (t *Timer) Running() bool {
	return t.running
}

// Tic starts the timer. Each Tic must be paired with a Toc; a second Tic
// before that Toc returns ErrAlreadyRunning and leaves the timer running
// from the original instant.
func (t *Timer) Tic() error {
	if t.running {
		return fmt.Errorf("timer %q: %w", t.label, ErrAlreadyRunning)
	}
	t.start = time.Now()
	t.running = true
	return nil
}

// Toc stops the timer and returns the duration since the matching Tic.
// A verbose timer also writes one report line to its output writer.
// Toc on an idle timer returns ErrNotRunning and changes nothing.
func (t *Timer) Toc() (time.Duration, error) {
	if !t.running {
		return 0, fmt.Errorf("timer %q: %w", t.label, ErrNotRunning)
	}
	elapsed := time.Since(t.start)
	t.running = false
	if t.verbose {
		fmt.Fprintf(t.out, "[%s] Elapsed: %s\n", t.label, renderSeconds(elapsed.Seconds(), t.precision))
	}
	return elapsed, nil
}

// TocTic stops the timer and immediately starts it again, returning the
// elapsed interval. Useful for timing a chain of successive sections.
func (t *Timer) TocTic() (time.Duration, error) {
	elapsed, err := t.Toc()
	if err != nil {
		return 0, err
	}
	return elapsed, t.Tic()
}

// renderSeconds formats elapsed seconds the way reports print them: rounded
// to the given digit count (unless negative), then split into m/s above a
// minute and h/m/s above an hour.
func renderSeconds(secs float64, precision int) string {
	if precision >= 0 {
		p10 := math.Pow(10, float64(precision))
		secs = math.Round(secs*p10) / p10
	}
	if secs < 60 {
		return formatFloat(secs) + "s"
	}
	mins := math.Floor(secs / 60)
	secs -= mins * 60
	if mins < 60 {
		return fmt.Sprintf("%sm %ss", formatFloat(mins), formatFloat(secs))
	}
	hours := math.Floor(mins / 60)
	mins -= hours * 60
	return fmt.Sprintf("%sh %sm %ss", formatFloat(hours), formatFloat(mins), formatFloat(secs))
}

// formatFloat renders a float with its shortest decimal form, keeping a
// trailing .0 on whole values so 65s at precision 0 reads "1.0m 5.0s".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
