// Package gmap reads graph-mapping records: one read per line, pinned to a
// graph vertex and an orientation. Mates are on consecutive lines.
//
// Line format (tab or space separated):
//
//	readID  readSeq  mappedID  position  isRC
//
// mappedID "*" marks an unmapped read; isRC is 0/1 or true/false.
package gmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pairwalk/internal/readid"
)

// Unmapped is the mappedID of a read that did not map to any vertex.
const Unmapped = "*"

var (
	// ErrPairMismatch means two consecutive records are not mates. The
	// stream's pairing invariant is broken and nothing downstream is valid.
	ErrPairMismatch = errors.New("gmap: consecutive records are not a mate pair")
	// ErrOddRecords means the stream ended on an unpaired record.
	ErrOddRecords = errors.New("gmap: odd number of records")
	ErrBadRecord  = errors.New("gmap: malformed record")
)

// Record is one mapped (or unmapped) read.
type Record struct {
	ReadID   string
	ReadSeq  []byte
	MappedID string
	Position int
	IsRC     bool
}

func (r Record) IsMapped() bool { return r.MappedID != "" && r.MappedID != Unmapped }

// Pair is two consecutive records whose IDs satisfy the mate convention.
type Pair struct {
	First, Second Record
}

// Reader streams records. It is not safe for concurrent use.
type Reader struct {
	sc   *bufio.Scanner
	name string
	line int
}

// NewReader reads records from r. name labels error messages.
func NewReader(r io.Reader, name string) *Reader {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc, name: name}
}

// Next returns the next record or io.EOF.
func (r *Reader) Next() (Record, error) {
	for r.sc.Scan() {
		r.line++
		line := strings.TrimSpace(r.sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			return Record{}, fmt.Errorf("%s:%d: %w", r.name, r.line, err)
		}
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, fmt.Errorf("%s: %w", r.name, err)
	}
	return Record{}, io.EOF
}

func parseRecord(line string) (Record, error) {
	f := strings.Fields(line)
	if len(f) != 5 {
		return Record{}, fmt.Errorf("%w: want 5 fields, got %d", ErrBadRecord, len(f))
	}
	pos, err := strconv.Atoi(f[3])
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad position %q", ErrBadRecord, f[3])
	}
	rc, err := strconv.ParseBool(f[4])
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad orientation flag %q", ErrBadRecord, f[4])
	}
	return Record{
		ReadID:   f[0],
		ReadSeq:  []byte(f[1]),
		MappedID: f[2],
		Position: pos,
		IsRC:     rc,
	}, nil
}

// PairReader groups consecutive records into validated mate pairs.
type PairReader struct {
	r *Reader
	n int
}

func NewPairReader(r *Reader) *PairReader { return &PairReader{r: r} }

// Next returns the next pair or io.EOF. A pairing violation is returned as
// ErrPairMismatch and is fatal: the reader must not be used afterwards.
func (p *PairReader) Next() (Pair, error) {
	first, err := p.r.Next()
	if err != nil {
		return Pair{}, err
	}
	second, err := p.r.Next()
	if errors.Is(err, io.EOF) {
		return Pair{}, fmt.Errorf("%w: %q has no mate", ErrOddRecords, first.ReadID)
	}
	if err != nil {
		return Pair{}, err
	}
	p.n++
	if !readid.IsPair(first.ReadID, second.ReadID) {
		return Pair{}, fmt.Errorf("%w: pair %d: %q followed by %q (want %q)",
			ErrPairMismatch, p.n, first.ReadID, second.ReadID, readid.PairID(first.ReadID))
	}
	return Pair{First: first, Second: second}, nil
}
