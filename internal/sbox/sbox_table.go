//go:build !purego

package sbox

// pairs merges adjacent tables into byte-wide lookups, already shifted into place: pairs[k][b] is the substitution of
// byte k of a word whose value is b.
var pairs = func() (t [4][256]uint32) { //nolint:gochecknoglobals // derived from Pi
	for k := range 4 {
		lo, hi := &Pi[2*k], &Pi[2*k+1]
		for b := range 256 {
			v := uint32(lo[b&0x0f]) | uint32(hi[b>>4])<<4
			t[k][b] = v << (8 * k)
		}
	}
	return t
}()

func substitute(a uint32) uint32 {
	return pairs[0][a&0xff] |
		pairs[1][(a>>8)&0xff] |
		pairs[2][(a>>16)&0xff] |
		pairs[3][a>>24]
}
