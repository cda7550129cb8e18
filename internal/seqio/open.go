// internal/seqio/open.go
package seqio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Stdio is the path that selects stdin/stdout.
const Stdio = "-"

// multiCloser closes several io.Closers in order, keeping the first error.
type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var err error
	for _, c := range m {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type readCloser struct {
	io.Reader
	multiCloser
}

type writeCloser struct {
	io.Writer
	multiCloser
}

// Open opens path for reading. "-" is stdin. Gzip input is detected by the
// 1F 8B magic or a .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdio {
		return openStream(os.Stdin, nopCloser{}, false)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := openStream(fh, fh, strings.HasSuffix(path, ".gz"))
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openStream(r io.Reader, c io.Closer, gz bool) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	if sig, _ := br.Peek(2); len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		gz = true
	}
	if gz {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &readCloser{Reader: gr, multiCloser: multiCloser{gr, c}}, nil
	}
	return &readCloser{Reader: br, multiCloser: multiCloser{c}}, nil
}

// Create opens path for writing. "-" is stdout (never closed). A .gz suffix
// gzips the stream.
func Create(path string) (io.WriteCloser, error) {
	if path == Stdio {
		return &writeCloser{Writer: os.Stdout}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gw := gzip.NewWriter(fh)
		return &writeCloser{Writer: gw, multiCloser: multiCloser{gw, fh}}, nil
	}
	return fh, nil
}

// Prefix drops the directory, a .gz suffix and the last extension:
// "data/reads.gmap.gz" -> "reads".
func Prefix(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), ".gz")
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}
