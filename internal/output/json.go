// internal/output/json.go
package output

import (
	"pairwalk/internal/resolve"
	"pairwalk/pkg/api"
)

// ToAPIResult converts a resolve.Result to the stable wire schema (v1).
func ToAPIResult(r resolve.Result) api.ResultV1 {
	v := api.ResultV1{
		PairID:    r.PairID,
		Outcome:   r.Outcome.String(),
		Records:   make([]api.RecordV1, 0, len(r.Records)),
		Walks:     r.Walks,
		Steps:     r.Steps,
		Truncated: r.Truncated,
	}
	if r.Outcome.Attempted() {
		v.Direction = r.Dir.String()
	}
	for _, rec := range r.Records {
		v.Records = append(v.Records, api.RecordV1{ID: rec.ID, Seq: string(rec.Seq)})
	}
	return v
}
