// internal/graph/graph.go
package graph

// Dir is the side of a vertex an edge leaves from.
type Dir uint8

const (
	Sense     Dir = iota // extends the vertex past its 3' end
	Antisense            // extends the vertex past its 5' end
)

// Flip returns the opposite direction.
func (d Dir) Flip() Dir {
	if d == Sense {
		return Antisense
	}
	return Sense
}

func (d Dir) String() string {
	if d == Sense {
		return "sense"
	}
	return "antisense"
}

// Comp says whether the two reads of an overlap lie on the same strand.
type Comp uint8

const (
	Same Comp = iota
	Reverse
)

func (c Comp) String() string {
	if c == Same {
		return "same"
	}
	return "reverse"
}

// NextDir is the direction used to leave the far vertex of an edge traversed
// in direction d. A reverse-complement overlap flips it.
func NextDir(d Dir, c Comp) Dir {
	if c == Reverse {
		return d.Flip()
	}
	return d
}

type (
	VertexIndex int32
	EdgeIndex   int32
)

// Vertex is one read.
type Vertex struct {
	ID  string
	Seq []byte
}

func (v *Vertex) Len() int { return len(v.Seq) }

// Edge is one half of an overlap, seen from From.
//
// Label is the part of To not covered by the overlap, already oriented in the
// walk frame of From (reverse-complemented where needed), so a walk string is
// the start read followed by the labels of its edges.
type Edge struct {
	From  VertexIndex
	To    VertexIndex
	Dir   Dir
	Comp  Comp
	Label []byte
}

// Distance is the number of bases this edge adds to a walk.
func (e *Edge) Distance() int { return len(e.Label) }

// Graph is an immutable vertex/edge arena.
type Graph struct {
	vertices []Vertex
	edges    []Edge
	byID     map[string]VertexIndex
	// adj[2*v+dir] lists the edges leaving v in dir, in insertion order.
	adj [][]EdgeIndex
}

// VertexByID looks up a vertex by read ID.
func (g *Graph) VertexByID(id string) (VertexIndex, bool) {
	v, ok := g.byID[id]
	return v, ok
}

// Vertex returns the vertex at idx. idx must be valid.
func (g *Graph) Vertex(idx VertexIndex) *Vertex { return &g.vertices[idx] }

// Edge returns the edge at idx. idx must be valid.
func (g *Graph) Edge(idx EdgeIndex) *Edge { return &g.edges[idx] }

// Edges returns the edges leaving v in dir. The slice is shared; do not modify.
func (g *Graph) Edges(v VertexIndex, dir Dir) []EdgeIndex {
	return g.adj[2*int(v)+int(dir)]
}

// HasVertex reports whether idx addresses a vertex of g.
func (g *Graph) HasVertex(idx VertexIndex) bool {
	return idx >= 0 && int(idx) < len(g.vertices)
}

func (g *Graph) NumVertices() int { return len(g.vertices) }
func (g *Graph) NumEdges() int    { return len(g.edges) }
