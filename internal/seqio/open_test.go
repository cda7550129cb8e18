package seqio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_PlainAndGzip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "g.asqg")
	require.NoError(t, os.WriteFile(plain, []byte("VT\tr1\tACGT\n"), 0o644))

	var zbuf bytes.Buffer
	zw := gzip.NewWriter(&zbuf)
	_, _ = zw.Write([]byte("VT\tr1\tACGT\n"))
	require.NoError(t, zw.Close())
	// magic number wins even without a .gz suffix
	zipped := filepath.Join(dir, "g2.asqg")
	require.NoError(t, os.WriteFile(zipped, zbuf.Bytes(), 0o644))

	for _, fn := range []string{plain, zipped} {
		rc, err := Open(fn)
		require.NoError(t, err, fn)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, "VT\tr1\tACGT\n", string(got), fn)
	}
}

func TestOpen_BadGzipSuffix(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.gz")
	require.NoError(t, os.WriteFile(fn, []byte("not gzip"), 0o644))
	_, err := Open(fn)
	require.Error(t, err)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestCreate_GzipRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.fa.gz")
	wc, err := Create(fn)
	require.NoError(t, err)
	_, err = io.WriteString(wc, ">a\nACGT\n")
	require.NoError(t, err)
	require.NoError(t, wc.Close())

	rc, err := Open(fn)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, ">a\nACGT\n", string(got))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "reads", Prefix("data/reads.gmap.gz"))
	assert.Equal(t, "reads", Prefix("reads.gmap"))
	assert.Equal(t, "reads", Prefix("reads"))
	assert.Equal(t, ".hidden", Prefix(".hidden"))
}
