// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"pairwalk/internal/gmap"
	"pairwalk/internal/resolve"
)

// DefaultProgressEvery is how many attempted pairs pass between progress reports.
const DefaultProgressEvery = 50000

// Config controls the resolving pipeline.
type Config struct {
	Threads       int            // number of worker goroutines (>=1)
	ProgressEvery int            // attempted pairs between Progress calls; 0 disables
	Progress      func(Counters) // called from the collector goroutine
}

// Counters are the run totals, aggregated in input order.
type Counters struct {
	Pairs      int64 // pairs read
	Attempted  int64 // pairs that reached the search
	Resolved   int64
	Unresolved int64
	Skipped    int64
	Truncated  int64 // searches that hit the step cap
}

// Add folds one result into c.
func (c *Counters) Add(r resolve.Result) {
	c.Pairs++
	switch r.Outcome {
	case resolve.Resolved:
		c.Resolved++
	case resolve.Unresolved:
		c.Unresolved++
	default:
		c.Skipped++
	}
	if r.Outcome.Attempted() {
		c.Attempted++
	}
	if r.Truncated {
		c.Truncated++
	}
}

type job struct {
	seq  int64
	pair gmap.Pair
}

type done struct {
	seq int64
	res resolve.Result
}

// Run reads pairs from src, resolves them on cfg.Threads workers, and calls
// emit once per pair in the order src produced them. Output is therefore the
// same for any thread count.
//
// It returns the first error encountered: a source error (including
// gmap.ErrPairMismatch), a resolver error, an emit error, or context
// cancellation. Counters reflect every pair emitted before the error.
func Run(
	ctx context.Context,
	cfg Config,
	src PairSource,
	res PairResolver,
	emit func(resolve.Result) error,
) (Counters, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	var c Counters
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan done, cfg.Threads*2)

	// Feed work
	g.Go(func() error {
		defer close(jobs)
		for seq := int64(0); ; seq++ {
			p, err := src.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case <-gctx.Done():
				return gctx.Err()
			case jobs <- job{seq: seq, pair: p}:
			}
		}
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case j, ok := <-jobs:
					if !ok {
						return nil
					}
					r, err := res.Resolve(j.pair)
					if err != nil {
						return err
					}
					select {
					case results <- done{seq: j.seq, res: r}:
					case <-gctx.Done():
						return gctx.Err()
					}
				}
			}
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector + resequencer
	g.Go(func() error {
		pending := make(map[int64]resolve.Result, cfg.Threads*4)
		var next int64
		for d := range results {
			pending[d.seq] = d.res
			for {
				r, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				c.Add(r)
				if err := emit(r); err != nil {
					return err
				}
				if r.Outcome.Attempted() && cfg.Progress != nil &&
					cfg.ProgressEvery > 0 && c.Attempted%int64(cfg.ProgressEvery) == 0 {
					cfg.Progress(c)
				}
			}
		}
		return nil
	})

	err := g.Wait()
	if ctx.Err() != nil {
		return c, ctx.Err()
	}
	return c, err
}
