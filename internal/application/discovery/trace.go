// Package discovery implements the patent discovery pipeline: synonym
// enrichment, multi-strategy international filing discovery, the family
// resolution chain, direct registry search, and the consolidation of all
// results into a single report.
package discovery

import (
	"fmt"
	"sync"
	"time"
)

// Trace accumulates the human-readable execution log returned in every
// report.  Lines are prefixed with the elapsed time since the trace was
// created so an operator can spot which phase consumed the run.
//
// The pipeline itself is sequential, but collaborator callbacks may log from
// other goroutines, so Trace is safe for concurrent use.
type Trace struct {
	mu    sync.Mutex
	start time.Time
	lines []string
}

// NewTrace returns an empty Trace starting now.
func NewTrace() *Trace {
	return &Trace{start: time.Now()}
}

// Addf appends a formatted line.
func (t *Trace) Addf(format string, args ...any) {
	line := fmt.Sprintf("[%6.1fs] ", time.Since(t.start).Seconds()) + fmt.Sprintf(format, args...)

	t.mu.Lock()
	t.lines = append(t.lines, line)
	t.mu.Unlock()
}

// Lines returns a copy of the accumulated log.
func (t *Trace) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}
