// internal/cmdutil/report.go
package cmdutil

import (
	"fmt"
	"io"
	"time"

	"pairwalk/internal/pipeline"
)

// Progress prints the periodic progress line.
func Progress(dst io.Writer, c pipeline.Counters) {
	_, _ = fmt.Fprintf(dst, "[pairwalk] processed %d pairs\n", c.Attempted)
}

// Summary prints the end-of-run line:
//
//	connect: Resolved 3 out of 4 pairs (0.750000) in 1.200000s (3.333333 pairs/s)
func Summary(dst io.Writer, c pipeline.Counters, elapsed time.Duration) {
	var frac, rate float64
	if c.Attempted > 0 {
		frac = float64(c.Resolved) / float64(c.Attempted)
	}
	secs := elapsed.Seconds()
	if secs > 0 {
		rate = float64(c.Attempted) / secs
	}
	_, _ = fmt.Fprintf(dst, "connect: Resolved %d out of %d pairs (%f) in %fs (%f pairs/s)\n",
		c.Resolved, c.Attempted, frac, secs, rate)
}
