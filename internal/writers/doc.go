// Package writers turns resolve.Results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (FASTA, JSONL).
//   - Resolve stays domain-only; Pipeline stays orchestration-only.
//   - JSONL goes through pkg/api (v1) for a stable wire format.
package writers
