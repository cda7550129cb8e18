// internal/graph/builder.go
package graph

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateVertex = errors.New("graph: duplicate vertex")
	ErrUnknownVertex   = errors.New("graph: unknown vertex")
	ErrEmptyVertexID   = errors.New("graph: empty vertex id")
)

// Builder accumulates vertices and edges. It is not safe for concurrent use.
type Builder struct {
	g     *Graph
	built bool
}

func NewBuilder() *Builder {
	return &Builder{g: &Graph{byID: make(map[string]VertexIndex)}}
}

// AddVertex adds a read and returns its index.
func (b *Builder) AddVertex(id string, seq []byte) (VertexIndex, error) {
	if b.built {
		return 0, errors.New("graph: builder already built")
	}
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	if _, dup := b.g.byID[id]; dup {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	idx := VertexIndex(len(b.g.vertices))
	b.g.vertices = append(b.g.vertices, Vertex{ID: id, Seq: seq})
	b.g.adj = append(b.g.adj, nil, nil)
	b.g.byID[id] = idx
	return idx, nil
}

// AddEdge adds one directed half-edge from -> to leaving from in dir.
// Callers that model both halves of an overlap add two edges.
func (b *Builder) AddEdge(from, to VertexIndex, dir Dir, comp Comp, label []byte) (EdgeIndex, error) {
	if b.built {
		return 0, errors.New("graph: builder already built")
	}
	if !b.g.HasVertex(from) || !b.g.HasVertex(to) {
		return 0, fmt.Errorf("%w: edge %d -> %d", ErrUnknownVertex, from, to)
	}
	idx := EdgeIndex(len(b.g.edges))
	b.g.edges = append(b.g.edges, Edge{From: from, To: to, Dir: dir, Comp: comp, Label: label})
	slot := 2*int(from) + int(dir)
	b.g.adj[slot] = append(b.g.adj[slot], idx)
	return idx, nil
}

// AddEdgeByID is AddEdge keyed by read IDs.
func (b *Builder) AddEdgeByID(from, to string, dir Dir, comp Comp, label []byte) (EdgeIndex, error) {
	fi, ok := b.g.byID[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, from)
	}
	ti, ok := b.g.byID[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, to)
	}
	return b.AddEdge(fi, ti, dir, comp, label)
}

// Seq returns the sequence of an already added vertex.
func (b *Builder) Seq(id string) ([]byte, bool) {
	idx, ok := b.g.byID[id]
	if !ok {
		return nil, false
	}
	return b.g.vertices[idx].Seq, true
}

// Build freezes the graph. The builder cannot be used afterwards.
func (b *Builder) Build() *Graph {
	b.built = true
	return b.g
}
