// pkg/api/results_v1.go
package api

// RecordV1 is one emitted sequence: a merged fragment or an original read.
type RecordV1 struct {
	ID  string `json:"id"`
	Seq string `json:"seq"`
}

// ResultV1 is the stable JSONL schema for one mate pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	PairID    string     `json:"pair_id"`
	Outcome   string     `json:"outcome"` // "resolved" | "unresolved" | "skipped"
	Records   []RecordV1 `json:"records"`
	Walks     int        `json:"walks"`
	Steps     int        `json:"steps"`
	Truncated bool       `json:"truncated"`
	Direction string     `json:"direction,omitempty"` // "sense" | "antisense"; empty when skipped
}
