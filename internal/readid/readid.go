// internal/readid/readid.go
package readid

import "strings"

// PairID returns the expected ID of id's mate by swapping the final
// character: '1' <-> '2' and 'A' <-> 'B' ("frag/1" -> "frag/2").
// It returns "" when id does not follow the convention.
func PairID(id string) string {
	if id == "" {
		return ""
	}
	last := len(id) - 1
	var swap byte
	switch id[last] {
	case '1':
		swap = '2'
	case '2':
		swap = '1'
	case 'A':
		swap = 'B'
	case 'B':
		swap = 'A'
	default:
		return ""
	}
	return id[:last] + string(swap)
}

// IsPair reports whether b is the mate of a.
func IsPair(a, b string) bool {
	p := PairID(a)
	return p != "" && p == b
}

// Basename strips the per-mate suffix: everything from the last '/'.
// IDs without a '/' are returned unchanged.
func Basename(id string) string {
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		return id[:i]
	}
	return id
}
