// internal/fasta/record.go
package fasta

// Record is one named sequence.
type Record struct {
	ID  string
	Seq []byte
}
