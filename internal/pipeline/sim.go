// internal/pipeline/sim.go
package pipeline

import (
	"pairwalk/internal/gmap"
	"pairwalk/internal/resolve"
)

// PairSource yields validated mate pairs and io.EOF at the end.
// gmap.PairReader satisfies it.
type PairSource interface {
	Next() (gmap.Pair, error)
}

// PairResolver is the minimal capability the pipeline needs.
// *resolve.Resolver (and fakes in tests) satisfy it. Implementations must be
// safe for concurrent use.
type PairResolver interface {
	Resolve(p gmap.Pair) (resolve.Result, error)
}
