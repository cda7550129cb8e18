package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pairwalk/internal/fasta"
	"pairwalk/internal/gmap"
	"pairwalk/internal/resolve"
)

type sliceSource struct {
	pairs []gmap.Pair
	i     int
	err   error // returned once pairs are exhausted, io.EOF if nil
}

func (s *sliceSource) Next() (gmap.Pair, error) {
	if s.i < len(s.pairs) {
		p := s.pairs[s.i]
		s.i++
		return p, nil
	}
	if s.err != nil {
		return gmap.Pair{}, s.err
	}
	return gmap.Pair{}, io.EOF
}

// fakeResolver classifies by MappedID and sleeps inversely to the index so
// later pairs tend to finish first.
type fakeResolver struct{ n int }

func (f fakeResolver) Resolve(p gmap.Pair) (resolve.Result, error) {
	var idx int
	_, _ = fmt.Sscanf(p.First.ReadID, "p%d/1", &idx)
	if f.n > 0 {
		time.Sleep(time.Duration(f.n-idx) * 50 * time.Microsecond)
	}
	r := resolve.Result{PairID: fmt.Sprintf("p%d", idx)}
	switch p.First.MappedID {
	case "res":
		r.Outcome = resolve.Resolved
		r.Records = []fasta.Record{{ID: r.PairID, Seq: []byte("ACGT")}}
	case "unres":
		r.Outcome = resolve.Unresolved
		r.Truncated = idx%2 == 0
	case "boom":
		return r, errors.New("resolver exploded")
	}
	return r, nil
}

func makePairs(n int, mapped func(i int) string) []gmap.Pair {
	out := make([]gmap.Pair, n)
	for i := range out {
		m := mapped(i)
		out[i] = gmap.Pair{
			First:  gmap.Record{ReadID: fmt.Sprintf("p%d/1", i), MappedID: m},
			Second: gmap.Record{ReadID: fmt.Sprintf("p%d/2", i), MappedID: m},
		}
	}
	return out
}

func cycle(i int) string {
	return []string{"res", "unres", "*"}[i%3]
}

func TestRun_OrderStableAcrossThreads(t *testing.T) {
	const n = 200
	var want []string
	for _, threads := range []int{1, 2, 8} {
		var got []string
		c, err := Run(context.Background(), Config{Threads: threads},
			&sliceSource{pairs: makePairs(n, cycle)}, fakeResolver{n: n},
			func(r resolve.Result) error {
				got = append(got, r.PairID)
				return nil
			})
		require.NoError(t, err)
		require.Len(t, got, n)
		assert.EqualValues(t, n, c.Pairs)
		if want == nil {
			want = got
			continue
		}
		assert.Equal(t, want, got, "threads=%d", threads)
	}
	for i, id := range want {
		assert.Equal(t, fmt.Sprintf("p%d", i), id)
	}
}

func TestRun_Counters(t *testing.T) {
	c, err := Run(context.Background(), Config{Threads: 3},
		&sliceSource{pairs: makePairs(9, cycle)}, fakeResolver{},
		func(resolve.Result) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, Counters{
		Pairs:      9,
		Attempted:  6,
		Resolved:   3,
		Unresolved: 3,
		Skipped:    3,
		Truncated:  1, // p4 (p1 and p7 are odd)
	}, c)
}

func TestRun_Progress(t *testing.T) {
	var seen []int64
	_, err := Run(context.Background(), Config{
		Threads:       4,
		ProgressEvery: 2,
		Progress:      func(c Counters) { seen = append(seen, c.Attempted) },
	}, &sliceSource{pairs: makePairs(9, cycle)}, fakeResolver{},
		func(resolve.Result) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4, 6}, seen)
}

func TestRun_SourceErrorIsFatal(t *testing.T) {
	src := &sliceSource{
		pairs: makePairs(5, cycle),
		err:   fmt.Errorf("x.gmap: %w", gmap.ErrPairMismatch),
	}
	var emitted int
	c, err := Run(context.Background(), Config{Threads: 2}, src, fakeResolver{},
		func(resolve.Result) error { emitted++; return nil })
	require.ErrorIs(t, err, gmap.ErrPairMismatch)
	assert.LessOrEqual(t, emitted, 5)
	assert.EqualValues(t, emitted, c.Pairs)
}

func TestRun_ResolverError(t *testing.T) {
	pairs := makePairs(4, func(i int) string {
		if i == 2 {
			return "boom"
		}
		return "res"
	})
	_, err := Run(context.Background(), Config{Threads: 2}, &sliceSource{pairs: pairs}, fakeResolver{},
		func(resolve.Result) error { return nil })
	assert.EqualError(t, err, "resolver exploded")
}

func TestRun_EmitErrorStops(t *testing.T) {
	sentinel := errors.New("disk full")
	var emitted int
	_, err := Run(context.Background(), Config{Threads: 4},
		&sliceSource{pairs: makePairs(1000, cycle)}, fakeResolver{},
		func(resolve.Result) error {
			emitted++
			if emitted == 3 {
				return sentinel
			}
			return nil
		})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, emitted)
}

func TestRun_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var emitted int
	_, err := Run(ctx, Config{Threads: 2},
		&sliceSource{pairs: makePairs(10000, cycle)}, fakeResolver{},
		func(resolve.Result) error {
			emitted++
			if emitted == 10 {
				cancel()
			}
			return nil
		})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, emitted, 10000)
}
