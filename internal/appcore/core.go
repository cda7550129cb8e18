// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime"
	"time"

	"pairwalk/internal/asqg"
	"pairwalk/internal/cmdutil"
	"pairwalk/internal/gmap"
	"pairwalk/internal/metrics"
	"pairwalk/internal/pipeline"
	"pairwalk/internal/resolve"
	"pairwalk/internal/seqio"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

type Options struct {
	GraphFile   string
	MappingFile string

	MaxDistance int
	MaxSteps    int

	Threads       int
	ProgressEvery int

	OutFile     string
	Unconnected string
	Format      string
	MetricsFile string

	Quiet bool
}

// Run loads the graph, resolves every pair of the mapping file and writes
// the results. It returns the process exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, log *slog.Logger) int {
	start := time.Now()

	g, st, err := asqg.LoadFile(o.GraphFile)
	if err != nil {
		log.Error("load graph", "err", err)
		return ExitIO
	}
	log.Info("graph loaded", "file", o.GraphFile,
		"vertices", st.Vertices, "overlaps", st.Overlaps, "contained", st.Contained,
		"edges", g.NumEdges())

	in, err := seqio.Open(o.MappingFile)
	if err != nil {
		log.Error("open mapping", "err", err)
		return ExitIO
	}
	defer func() { _ = in.Close() }()

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	sinks, err := OpenSinks(stdout, o.OutFile, o.Unconnected, o.Format, thr*4)
	if err != nil {
		log.Error("open output", "err", err)
		return ExitIO
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	m := metrics.New()
	cfg := pipeline.Config{Threads: thr, ProgressEvery: o.ProgressEvery}
	if !o.Quiet {
		cfg.Progress = func(c pipeline.Counters) { cmdutil.Progress(stderr, c) }
	}
	log.Debug("resolving", "threads", thr, "max_distance", o.MaxDistance, "max_steps", o.MaxSteps)

	c, perr := pipeline.Run(ctx, cfg,
		gmap.NewPairReader(gmap.NewReader(in, o.MappingFile)),
		resolve.New(g, o.MaxDistance, o.MaxSteps),
		func(r resolve.Result) error {
			m.Observe(r)
			if r.Truncated {
				log.Debug("search truncated", "pair", r.PairID, "steps", r.Steps, "walks", r.Walks)
			}
			return sinks.Send(ctx, r)
		},
	)

	werr := sinks.Close()

	if o.MetricsFile != "" {
		if err := m.WriteTextfile(o.MetricsFile); err != nil {
			log.Error("write metrics", "err", err)
			if perr == nil && werr == nil {
				return ExitIO
			}
		}
	}

	if werr != nil {
		log.Error("write output", "err", werr)
		return ExitIO
	}
	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		if errors.Is(perr, gmap.ErrPairMismatch) || errors.Is(perr, gmap.ErrOddRecords) {
			log.Error("mapping is not mate-paired", "err", perr, "pairs_done", c.Pairs)
		} else {
			log.Error("run failed", "err", perr)
		}
		return ExitIO
	}

	log.Info("done", "pairs", c.Pairs, "attempted", c.Attempted, "resolved", c.Resolved,
		"unresolved", c.Unresolved, "skipped", c.Skipped, "truncated", c.Truncated)
	if !o.Quiet {
		cmdutil.Summary(stderr, c, time.Since(start))
	}
	return ExitOK
}
