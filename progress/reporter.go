// Package progress implements the throttled textual progress reporter
// bound to a tty (component H). It is a collaborator, not part of the
// matching core: the engine calls Report after every line and the
// reporter decides, cheaply, whether that update is worth rendering.
package progress

import (
	"fmt"
	"io"
	"time"
)

// DefaultInterval is the minimum wall-clock time between rendered
// updates (spec.md §5: "at most once per second").
const DefaultInterval = time.Second

// DefaultMinDelta is the minimum number of newly processed bytes
// required before an update is rendered, independent of the interval.
const DefaultMinDelta = 1 << 20 // 1 MiB

// Reporter renders "bytes processed / total" updates to w, throttled in
// both wall-clock time and byte delta. The zero value is not usable;
// construct one with New.
type Reporter struct {
	w        io.Writer
	enabled  bool
	interval time.Duration
	minDelta int64

	started    bool
	lastRender time.Time
	lastBytes  int64

	now func() time.Time
}

// New returns a Reporter that writes to w iff enabled is true (spec.md
// §6: enabled when -o/--output is used and the destination is a tty).
// A disabled Reporter's Report and Finish are no-ops, so callers never
// need to branch on whether progress reporting was requested.
func New(w io.Writer, enabled bool) *Reporter {
	return &Reporter{
		w:        w,
		enabled:  enabled,
		interval: DefaultInterval,
		minDelta: DefaultMinDelta,
		now:      time.Now,
	}
}

// Report notifies the reporter that processed bytes have been consumed
// out of a stream of total bytes (0 if the total is unknown, e.g.
// reading from a pipe). It renders at most once per interval and only
// past minDelta bytes of progress since the last render.
func (r *Reporter) Report(processed, total int64) {
	if !r.enabled {
		return
	}
	now := r.now()
	if r.started && (now.Sub(r.lastRender) < r.interval || processed-r.lastBytes < r.minDelta) {
		return
	}
	r.started = true
	r.lastRender = now
	r.lastBytes = processed
	r.render(processed, total)
}

// Finish renders a final, unthrottled update and terminates the
// progress line so subsequent output is not garbled.
func (r *Reporter) Finish(processed, total int64) {
	if !r.enabled {
		return
	}
	r.render(processed, total)
	fmt.Fprint(r.w, "\n")
}

func (r *Reporter) render(processed, total int64) {
	if total > 0 {
		pct := float64(processed) / float64(total) * 100
		fmt.Fprintf(r.w, "\r%9d / %9d bytes (%5.1f%%)", processed, total, pct)
	} else {
		fmt.Fprintf(r.w, "\r%9d bytes", processed)
	}
}
