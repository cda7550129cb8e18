// internal/output/output_test.go
package output

import (
	"bytes"
	"testing"

	"pairwalk/internal/fasta"
	"pairwalk/internal/graph"
	"pairwalk/internal/resolve"
)

func TestWriteFASTA(t *testing.T) {
	var buf bytes.Buffer
	list := []fasta.Record{{ID: "p1", Seq: []byte("ACGT")}, {ID: "p2/1", Seq: []byte("GG")}}
	if err := WriteFASTA(&buf, list); err != nil {
		t.Fatalf("fasta: %v", err)
	}
	if got, want := buf.String(), ">p1\nACGT\n>p2/1\nGG\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestStreamFASTA_SkipsEmptyResults(t *testing.T) {
	var buf bytes.Buffer
	in := make(chan resolve.Result, 3)
	in <- resolve.Result{PairID: "a", Outcome: resolve.Skipped}
	in <- resolve.Result{PairID: "b", Outcome: resolve.Resolved, Records: []fasta.Record{{ID: "b", Seq: []byte("AC")}}}
	in <- resolve.Result{PairID: "c", Outcome: resolve.Skipped}
	close(in)
	if err := StreamFASTA(&buf, in); err != nil {
		t.Fatal(err)
	}
	if buf.String() != ">b\nAC\n" {
		t.Fatalf("unexpected FASTA output: %q", buf.String())
	}
}

func TestToAPIResult(t *testing.T) {
	cases := []struct {
		name    string
		in      resolve.Result
		wantDir string
		wantN   int
	}{
		{"resolved", resolve.Result{PairID: "x", Outcome: resolve.Resolved, Walks: 1, Steps: 4,
			Dir: graph.Antisense, Records: []fasta.Record{{ID: "x", Seq: []byte("ACGT")}}}, "antisense", 1},
		{"skipped", resolve.Result{PairID: "y"}, "", 0},
	}
	for _, tc := range cases {
		v := ToAPIResult(tc.in)
		if v.Direction != tc.wantDir || len(v.Records) != tc.wantN || v.Outcome != tc.in.Outcome.String() {
			t.Fatalf("%s: unexpected %+v", tc.name, v)
		}
		if v.Records == nil {
			t.Fatalf("%s: records must encode as [] not null", tc.name)
		}
	}
}
