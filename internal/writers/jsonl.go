// internal/writers/jsonl.go
package writers

import (
	"io"

	"pairwalk/internal/jsonlutil"
	"pairwalk/internal/output"
	"pairwalk/internal/resolve"
)

// StartResultJSONLWriter streams each resolve.Result as one JSON line (v1).
func StartResultJSONLWriter(out io.Writer, bufSize int) (chan<- resolve.Result, <-chan error) {
	return jsonlutil.Start[resolve.Result](out, bufSize,
		func(r resolve.Result) any { return output.ToAPIResult(r) },
		IsBrokenPipe,
	)
}
