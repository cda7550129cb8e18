// internal/appcore/sinks.go
package appcore

import (
	"context"
	"io"

	"pairwalk/internal/output"
	"pairwalk/internal/resolve"
	"pairwalk/internal/seqio"
	"pairwalk/internal/writers"
)

// Sinks fans results out to the main output and, optionally, the
// unconnected side file. Each sink has its own writer goroutine.
type Sinks struct {
	main     chan<- resolve.Result
	mainDone <-chan error
	side     chan<- resolve.Result
	sideDone <-chan error
	closers  []io.Closer
}

// OpenSinks opens outFile ("-" writes to stdout) in format, and unconnected
// as FASTA when it is non-empty.
func OpenSinks(stdout io.Writer, outFile, unconnected, format string, bufSize int) (*Sinks, error) {
	s := &Sinks{}
	w, err := s.open(stdout, outFile)
	if err != nil {
		return nil, err
	}
	s.main, s.mainDone = writers.StartRecordWriter(w, format, bufSize)

	if unconnected != "" {
		sw, err := s.open(stdout, unconnected)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.side, s.sideDone = writers.StartRecordWriter(sw, output.FormatFASTA, bufSize)
	}
	return s, nil
}

func (s *Sinks) open(stdout io.Writer, path string) (io.Writer, error) {
	if path == seqio.Stdio {
		return stdout, nil
	}
	wc, err := seqio.Create(path)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, wc)
	return wc, nil
}

// Send queues r. Unresolved pairs are also copied to the side file.
func (s *Sinks) Send(ctx context.Context, r resolve.Result) error {
	select {
	case s.main <- r:
	case <-ctx.Done():
		return ctx.Err()
	}
	if s.side != nil && writers.UnresolvedOnly(r) {
		select {
		case s.side <- r:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Close drains the writers and closes the files, returning the first error.
// A broken pipe is not an error.
func (s *Sinks) Close() error {
	var errs []error
	if s.main != nil {
		close(s.main)
		errs = append(errs, <-s.mainDone)
	}
	if s.side != nil {
		close(s.side)
		errs = append(errs, <-s.sideDone)
	}
	for _, c := range s.closers {
		if err := c.Close(); err != nil && !writers.IsBrokenPipe(err) {
			errs = append(errs, err)
		}
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
