// internal/writers/result.go
package writers

import (
	"bufio"
	"io"

	"pairwalk/internal/output"
	"pairwalk/internal/resolve"
)

func init() {
	RegisterResult(output.FormatFASTA, func(w io.Writer, in <-chan resolve.Result) error {
		bw := bufio.NewWriterSize(w, 64<<10)
		if err := output.StreamFASTA(bw, in); err != nil {
			return err
		}
		return bw.Flush()
	})

	RegisterResult(output.FormatJSONL, func(w io.Writer, in <-chan resolve.Result) error {
		pipe, done := StartResultJSONLWriter(w, cap(in))
		for r := range in {
			pipe <- r
		}
		close(pipe)
		return <-done
	})
}

// StartRecordWriter spins up one writer goroutine for results in format.
// Results are written in arrival order. Close the returned channel, then
// read the error channel once.
//
// A failed writer keeps draining its input, so the sender never blocks; a
// broken pipe is reported as nil.
func StartRecordWriter(out io.Writer, format string, bufSize int) (chan<- resolve.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan resolve.Result, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteResults(format, out, in)
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}

// UnresolvedOnly filters a result stream down to unresolved pairs. It is used
// for the --unconnected side file.
func UnresolvedOnly(r resolve.Result) bool { return r.Outcome == resolve.Unresolved }
