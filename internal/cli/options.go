// internal/cli/options.go
package cli

import (
	"fmt"
	"strings"

	"pairwalk/internal/output"
	"pairwalk/internal/pipeline"
	"pairwalk/internal/search"
	"pairwalk/internal/seqio"
)

// Options holds all CLI flags and arguments. The yaml tags name the keys a
// --config file may set; flag tags name the flag reported in validation errors.
type Options struct {
	// Inputs (positional)
	GraphFile   string `yaml:"-" flag:"GRAPH" validate:"required"`
	MappingFile string `yaml:"-" flag:"MAPPING" validate:"required"`

	// Search
	MaxDistance int `yaml:"max_distance" flag:"--max-distance" validate:"gte=0"`
	MaxSteps    int `yaml:"max_steps" flag:"--max-steps" validate:"gte=1"`

	// Performance
	Threads int `yaml:"threads" flag:"--threads" validate:"gte=0"`

	// Output
	OutFile       string `yaml:"outfile" flag:"--outfile"`
	Unconnected   string `yaml:"unconnected" flag:"--unconnected"`
	Output        string `yaml:"output" flag:"--output" validate:"oneof=fasta jsonl"`
	ProgressEvery int    `yaml:"progress_every" flag:"--progress-every" validate:"gte=0"`
	MetricsFile   string `yaml:"metrics_file" flag:"--metrics-file"`

	// Logging
	Verbose int  `yaml:"verbose" flag:"--verbose" validate:"gte=0"`
	Quiet   bool `yaml:"quiet" flag:"--quiet"`

	Config string `yaml:"-" flag:"--config"`
}

// Defaults returns the options a bare invocation runs with.
func Defaults() Options {
	return Options{
		MaxDistance:   search.DefaultMaxDistance,
		MaxSteps:      search.DefaultMaxSteps,
		Threads:       1,
		Output:        output.FormatFASTA,
		ProgressEvery: pipeline.DefaultProgressEvery,
	}
}

// DefaultOutFile is where results go when --outfile is not given:
// "<dir>/reads.gmap" -> "reads.connect.fa".
func DefaultOutFile(mappingFile, format string) string {
	ext := ".connect.fa"
	if format == output.FormatJSONL {
		ext = ".connect.jsonl"
	}
	if mappingFile == seqio.Stdio {
		return seqio.Stdio
	}
	return seqio.Prefix(mappingFile) + ext
}

// Finalize fills fields derived from other fields. Call after Validate.
func (o *Options) Finalize() {
	if o.OutFile == "" {
		o.OutFile = DefaultOutFile(o.MappingFile, o.Output)
	}
}

func (o Options) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "graph=%s mapping=%s out=%s", o.GraphFile, o.MappingFile, o.OutFile)
	fmt.Fprintf(&b, " max-distance=%d max-steps=%d threads=%d output=%s",
		o.MaxDistance, o.MaxSteps, o.Threads, o.Output)
	return b.String()
}
