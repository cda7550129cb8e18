// internal/integration/fixtures_test.go
package integration

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// The graph tiles AAACCCGGGTTTAGGC with three reads; r3 is stored
// reverse-complemented and r4 is contained in r1.
const graphASQG = `HT	VN:i:1
VT	r1	AAACCCGG
VT	r2	CCGGGTTT
VT	r3	GCCTAAAC
VT	r4	CCCG
ED	r1 r2 4 7 8 0 3 8 0 0
ED	r2 r3 4 7 8 4 7 8 1 0
ED	r1 r4 3 6 8 0 3 4 0 0
`

// frag1 resolves, frag2 is skipped, frag3 leaves r1 the wrong way and stays unresolved.
const mappingGMAP = `frag1/1	AAACCCGG	r1	0	0
frag1/2	GCCTAAAC	r3	0	0
frag2/1	ACGTACGT	*	0	0
frag2/2	CCGGGTTT	r2	0	0
frag3/1	ACGT	r1	0	1
frag3/2	TTTT	r3	0	0
`

const wantFASTA = `>frag1
AAACCCGGGTTTAGGC
>frag3/1
ACGT
>frag3/2
TTTT
`

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

// fixture writes the graph and n repetitions of the mapping (pair IDs made
// unique per repetition) and returns their paths.
func fixture(t *testing.T, n int) (graph, mapping string) {
	t.Helper()
	dir := t.TempDir()
	var b strings.Builder
	for i := 0; i < n; i++ {
		rep := mappingGMAP
		if i > 0 {
			rep = strings.ReplaceAll(rep, "frag", "r"+strconv.Itoa(i)+"frag")
		}
		b.WriteString(rep)
	}
	return write(t, dir, "g.asqg", graphASQG), write(t, dir, "reads.gmap", b.String())
}
