// Package asqg loads an overlap graph from the ASQG text format.
//
//	HT  <tags...>
//	VT  <id> <seq> [tags...]
//	ED  <id1> <id2> <s1> <e1> <l1> <s2> <e2> <l2> <rc> <nd>
//
// Overlap coordinates are 0-based, inclusive, and on each read's own forward
// strand. Every proper overlap becomes two graph edges, one leaving each read.
// Containments carry no new sequence and are dropped.
package asqg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pairwalk/internal/dna"
	"pairwalk/internal/graph"
	"pairwalk/internal/seqio"
)

var ErrBadLine = errors.New("asqg: malformed line")

// Stats summarizes what a load kept and dropped.
type Stats struct {
	Vertices  int
	Overlaps  int
	Contained int
}

// Overlap is one parsed ED record.
type Overlap struct {
	ID      [2]string
	Start   [2]int
	End     [2]int
	Len     [2]int
	RC      bool
	NumDiff int
}

func (o Overlap) contained(i int) bool { return o.Start[i] == 0 && o.End[i] == o.Len[i]-1 }

// dir is the side of read i that the overlap sits on.
func (o Overlap) dir(i int) (graph.Dir, error) {
	switch {
	case o.End[i] == o.Len[i]-1:
		return graph.Sense, nil
	case o.Start[i] == 0:
		return graph.Antisense, nil
	}
	return 0, fmt.Errorf("%w: overlap %s/%s does not reach an end of %s", ErrBadLine, o.ID[0], o.ID[1], o.ID[i])
}

// LoadFile opens path ("-" for stdin, gzip detected) and loads it.
func LoadFile(path string) (*graph.Graph, Stats, error) {
	rc, err := seqio.Open(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer func() { _ = rc.Close() }()
	return Load(rc, path)
}

// Load reads an ASQG stream. name labels error messages. Vertices must be
// declared before the overlaps that use them.
func Load(r io.Reader, name string) (*graph.Graph, Stats, error) {
	var st Stats
	b := graph.NewBuilder()

	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Fields(line)
		var err error
		switch f[0] {
		case "HT":
		case "VT":
			if len(f) < 3 {
				err = fmt.Errorf("%w: VT wants id and sequence", ErrBadLine)
				break
			}
			if _, err = b.AddVertex(f[1], []byte(strings.ToUpper(f[2]))); err == nil {
				st.Vertices++
			}
		case "ED":
			var o Overlap
			if o, err = parseOverlap(f[1:]); err != nil {
				break
			}
			var added bool
			if added, err = addOverlap(b, o); err == nil {
				if added {
					st.Overlaps++
				} else {
					st.Contained++
				}
			}
		default:
			err = fmt.Errorf("%w: unknown record type %q", ErrBadLine, f[0])
		}
		if err != nil {
			return nil, st, fmt.Errorf("%s:%d: %w", name, ln, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("%s: %w", name, err)
	}
	return b.Build(), st, nil
}

func parseOverlap(f []string) (Overlap, error) {
	var o Overlap
	if len(f) < 10 {
		return o, fmt.Errorf("%w: ED wants 10 fields, got %d", ErrBadLine, len(f))
	}
	o.ID = [2]string{f[0], f[1]}
	nums := make([]int, 8)
	for i := range nums {
		n, err := strconv.Atoi(f[2+i])
		if err != nil {
			return o, fmt.Errorf("%w: field %d: %q", ErrBadLine, 3+i, f[2+i])
		}
		nums[i] = n
	}
	o.Start = [2]int{nums[0], nums[3]}
	o.End = [2]int{nums[1], nums[4]}
	o.Len = [2]int{nums[2], nums[5]}
	o.RC = nums[6] == 1
	o.NumDiff = nums[7]
	for i := 0; i < 2; i++ {
		if o.Start[i] < 0 || o.Start[i] > o.End[i] || o.End[i] >= o.Len[i] {
			return o, fmt.Errorf("%w: bad coordinates for %s", ErrBadLine, o.ID[i])
		}
	}
	return o, nil
}

// addOverlap adds both halves of o. It reports false for a containment.
func addOverlap(b *graph.Builder, o Overlap) (bool, error) {
	if o.contained(0) || o.contained(1) {
		return false, nil
	}
	comp := graph.Same
	if o.RC {
		comp = graph.Reverse
	}
	var dirs [2]graph.Dir
	for i := range dirs {
		d, err := o.dir(i)
		if err != nil {
			return false, err
		}
		dirs[i] = d
	}
	for i := 0; i < 2; i++ {
		j, d := 1-i, dirs[i]
		to, ok := b.Seq(o.ID[j])
		if !ok {
			return false, fmt.Errorf("%w: %q", graph.ErrUnknownVertex, o.ID[j])
		}
		if len(to) != o.Len[j] {
			return false, fmt.Errorf("%w: %s has length %d, overlap says %d", ErrBadLine, o.ID[j], len(to), o.Len[j])
		}
		label := unmatched(to, o.Start[j], o.End[j])
		if (d == graph.Antisense) != (comp == graph.Reverse) {
			label = dna.RevComp(label)
		}
		if _, err := b.AddEdgeByID(o.ID[i], o.ID[j], d, comp, label); err != nil {
			return false, err
		}
	}
	return true, nil
}

// unmatched returns the part of seq outside [start, end].
func unmatched(seq []byte, start, end int) []byte {
	if end >= len(seq) {
		return nil
	}
	if start == 0 {
		return append([]byte(nil), seq[end+1:]...)
	}
	return append([]byte(nil), seq[:start]...)
}
