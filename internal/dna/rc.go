// internal/dna/rc.go
package dna

var complement [256]byte

func init() {
	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'},
		{'R', 'Y'}, // A/G <-> C/T
		{'S', 'S'}, {'W', 'W'},
		{'K', 'M'},
		{'B', 'V'},
		{'D', 'H'},
		{'N', 'N'},
	}
	for _, p := range pairs {
		complement[p.a], complement[p.b] = p.b, p.a
		la, lb := p.a+'a'-'A', p.b+'a'-'A'
		complement[la], complement[lb] = lb, la
	}
}

// RevComp returns the reverse complement of seq in a new slice.
// Case is preserved; bytes outside the IUPAC alphabet become 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}
