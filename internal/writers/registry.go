// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"pairwalk/internal/resolve"
)

// ResultWriters maps an output format to its streaming handler.
// Register in init() blocks.
var ResultWriters = map[string]func(w io.Writer, in <-chan resolve.Result) error{}

// RegisterResult installs a handler (last wins).
func RegisterResult(format string, fn func(io.Writer, <-chan resolve.Result) error) {
	ResultWriters[format] = fn
}

// WriteResults dispatches to the registered handler for format.
func WriteResults(format string, w io.Writer, in <-chan resolve.Result) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, in)
}
