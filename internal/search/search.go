// Package search enumerates walks through a string graph between two reads.
//
// FindWalks is exhaustive within its bounds: every walk from start to target
// whose summed edge distance stays within maxDistance is returned, unless the
// global step budget runs out first, in which case the walks found so far are
// returned with Truncated set.
package search

import (
	"errors"
	"fmt"

	"pairwalk/internal/dna"
	"pairwalk/internal/graph"
)

const (
	DefaultMaxDistance = 250
	DefaultMaxSteps    = 10000
)

var (
	ErrSameEndpoints = errors.New("search: start and target are the same vertex")
	ErrUnknownVertex = errors.New("search: unknown vertex")
	ErrBadBound      = errors.New("search: negative bound")
)

// Walk is a path of edges from Start. StartDir is the direction the first
// edge leaves Start in.
type Walk struct {
	Start    graph.VertexIndex
	StartDir graph.Dir
	Edges    []graph.EdgeIndex
	Distance int
}

// Vertices returns the ordered vertex path, Start first.
func (w Walk) Vertices(g *graph.Graph) []graph.VertexIndex {
	out := make([]graph.VertexIndex, 0, len(w.Edges)+1)
	out = append(out, w.Start)
	for _, e := range w.Edges {
		out = append(out, g.Edge(e).To)
	}
	return out
}

// IDs returns the read IDs along the walk.
func (w Walk) IDs(g *graph.Graph) []string {
	vs := w.Vertices(g)
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = g.Vertex(v).ID
	}
	return out
}

// Bytes is the walk's sequence: the start read, in walk orientation, followed
// by the label of every edge.
func (w Walk) Bytes(g *graph.Graph) []byte {
	start := g.Vertex(w.Start).Seq
	out := make([]byte, 0, len(start)+w.Distance)
	if w.StartDir == graph.Antisense {
		out = append(out, dna.RevComp(start)...)
	} else {
		out = append(out, start...)
	}
	for _, e := range w.Edges {
		out = append(out, g.Edge(e).Label...)
	}
	return out
}

func (w Walk) String(g *graph.Graph) string { return string(w.Bytes(g)) }

// Result is the outcome of one FindWalks call.
type Result struct {
	Walks     []Walk
	Truncated bool // step budget exhausted with work still pending
	Steps     int  // extensions performed
}

// frame is one pending extension on the DFS stack.
type frame struct {
	edge  graph.EdgeIndex
	depth int // len(path) before this edge is appended
	dist  int // walk distance after this edge
}

// FindWalks returns every walk from start to target leaving start in dir whose
// distance is at most maxDistance, performing at most maxSteps extensions.
//
// The traversal is an iterative depth-first search in edge enumeration order,
// so results are deterministic for a given graph.
func FindWalks(g *graph.Graph, start, target graph.VertexIndex, dir graph.Dir, maxDistance, maxSteps int) (Result, error) {
	var res Result
	if !g.HasVertex(start) || !g.HasVertex(target) {
		return res, fmt.Errorf("%w: %d -> %d", ErrUnknownVertex, start, target)
	}
	if start == target {
		return res, ErrSameEndpoints
	}
	if maxDistance < 0 || maxSteps < 0 {
		return res, fmt.Errorf("%w: distance=%d steps=%d", ErrBadBound, maxDistance, maxSteps)
	}

	var (
		stack []frame
		path  []graph.EdgeIndex
	)
	push := func(from graph.VertexIndex, d graph.Dir, depth, dist int) {
		es := g.Edges(from, d)
		for i := len(es) - 1; i >= 0; i-- {
			nd := dist + g.Edge(es[i]).Distance()
			if nd > maxDistance {
				continue
			}
			stack = append(stack, frame{edge: es[i], depth: depth, dist: nd})
		}
	}
	push(start, dir, 0, 0)

	for len(stack) > 0 {
		if res.Steps >= maxSteps {
			res.Truncated = true
			break
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.Steps++

		path = append(path[:f.depth], f.edge)
		e := g.Edge(f.edge)
		if e.To == target {
			res.Walks = append(res.Walks, Walk{
				Start:    start,
				StartDir: dir,
				Edges:    append([]graph.EdgeIndex(nil), path...),
				Distance: f.dist,
			})
			continue
		}
		push(e.To, graph.NextDir(e.Dir, e.Comp), len(path), f.dist)
	}
	return res, nil
}
