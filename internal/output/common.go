// internal/output/common.go
package output

// Output formats accepted by --output.
const (
	FormatFASTA = "fasta"
	FormatJSONL = "jsonl"
)

// Formats lists the accepted formats in help order.
var Formats = []string{FormatFASTA, FormatJSONL}
