// Package resolve turns one mate pair into either a merged fragment or the
// two original reads, depending on how many graph walks connect the mates.
//
// It never imports pipeline, writers, cli or app; keep it domain-only.
package resolve

import (
	"fmt"

	"pairwalk/internal/fasta"
	"pairwalk/internal/gmap"
	"pairwalk/internal/graph"
	"pairwalk/internal/readid"
	"pairwalk/internal/search"
)

// Outcome classifies a pair.
type Outcome uint8

const (
	// Skipped: a mate is unmapped or maps to a vertex missing from the graph.
	// Not attempted, nothing emitted.
	Skipped Outcome = iota
	// Resolved: exactly one walk; one merged record emitted.
	Resolved
	// Unresolved: zero walks, several walks, or a truncated search; both
	// original reads emitted unchanged.
	Unresolved
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Unresolved:
		return "unresolved"
	}
	return "skipped"
}

// Attempted reports whether the pair reached the search.
func (o Outcome) Attempted() bool { return o != Skipped }

// Result is the complete decision for one pair.
type Result struct {
	PairID    string
	Outcome   Outcome
	Records   []fasta.Record
	Walks     int // walks found; 0 when skipped
	Steps     int
	Truncated bool
	Dir       graph.Dir
}

// Resolver is safe for concurrent use; it only reads the graph.
type Resolver struct {
	Graph       *graph.Graph
	MaxDistance int
	MaxSteps    int
}

func New(g *graph.Graph, maxDistance, maxSteps int) *Resolver {
	return &Resolver{Graph: g, MaxDistance: maxDistance, MaxSteps: maxSteps}
}

// WalkDirection is the direction the search leaves the first mate's vertex
// in. Only the first mate's orientation is consulted: the search is anchored
// at X looking toward Y.
func WalkDirection(first gmap.Record) graph.Dir {
	d := graph.Sense
	if first.IsRC {
		d = d.Flip()
	}
	return d
}

// Resolve decides one pair. The pair must already satisfy the mate naming
// convention (gmap.PairReader enforces it). The only error is an internal
// search failure, which indicates a bug rather than bad input.
func (r *Resolver) Resolve(p gmap.Pair) (Result, error) {
	res := Result{PairID: readid.Basename(p.First.ReadID)}
	if !p.First.IsMapped() || !p.Second.IsMapped() {
		return res, nil
	}
	x, okX := r.Graph.VertexByID(p.First.MappedID)
	y, okY := r.Graph.VertexByID(p.Second.MappedID)
	if !okX || !okY {
		return res, nil
	}
	res.Dir = WalkDirection(p.First)

	if x == y {
		// Both mates on one read: no walk to search for.
		res.Outcome = Unresolved
		res.Records = originals(p)
		return res, nil
	}

	sr, err := search.FindWalks(r.Graph, x, y, res.Dir, r.MaxDistance, r.MaxSteps)
	if err != nil {
		return res, fmt.Errorf("resolve %s: %w", res.PairID, err)
	}
	res.Walks, res.Steps, res.Truncated = len(sr.Walks), sr.Steps, sr.Truncated

	if len(sr.Walks) == 1 && !sr.Truncated {
		res.Outcome = Resolved
		res.Records = []fasta.Record{{ID: res.PairID, Seq: sr.Walks[0].Bytes(r.Graph)}}
		return res, nil
	}
	res.Outcome = Unresolved
	res.Records = originals(p)
	return res, nil
}

func originals(p gmap.Pair) []fasta.Record {
	return []fasta.Record{
		{ID: p.First.ReadID, Seq: p.First.ReadSeq},
		{ID: p.Second.ReadID, Seq: p.Second.ReadSeq},
	}
}
