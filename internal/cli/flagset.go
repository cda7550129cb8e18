// internal/cli/flagset.go
package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"pairwalk/internal/output"
)

// RegisterFlags binds every flag to o. Defaults come from o's current values.
func RegisterFlags(fs *pflag.FlagSet, o *Options) {
	fs.SortFlags = false

	// Search
	fs.IntVarP(&o.MaxDistance, "max-distance", "d", o.MaxDistance, "maximum walk distance (bp added beyond the first read)")
	fs.IntVarP(&o.MaxDistance, "max-dist", "m", o.MaxDistance, "alias of --max-distance")
	_ = fs.MarkHidden("max-dist")
	fs.IntVar(&o.MaxSteps, "max-steps", o.MaxSteps, "search step budget per pair")
	_ = fs.MarkHidden("max-steps")

	// Performance
	fs.IntVarP(&o.Threads, "threads", "t", o.Threads, "number of worker threads (0 = all CPUs)")

	// Output
	fs.StringVarP(&o.OutFile, "outfile", "o", o.OutFile, "write results to FILE ('-' for stdout, .gz compresses) [<MAPPING prefix>.connect.fa]")
	fs.StringVar(&o.Unconnected, "unconnected", o.Unconnected, "also write the reads of unresolved pairs to FILE (FASTA)")
	fs.StringVar(&o.Output, "output", o.Output, "output format: "+strings.Join(output.Formats, " | "))
	fs.IntVar(&o.ProgressEvery, "progress-every", o.ProgressEvery, "report progress every N attempted pairs (0 = never)")
	fs.StringVar(&o.MetricsFile, "metrics-file", o.MetricsFile, "write Prometheus metrics to FILE at exit")

	// Logging
	fs.CountVarP(&o.Verbose, "verbose", "v", "verbose logging (repeatable)")
	fs.BoolVarP(&o.Quiet, "quiet", "q", o.Quiet, "only log errors")

	fs.StringVar(&o.Config, "config", o.Config, "read defaults from a YAML file; explicit flags win")
}
