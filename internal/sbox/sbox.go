// Package sbox implements the nonlinear substitution layer of the GOST R 34.12-2015 64-bit block cipher.
package sbox

// Pi is the substitution set π'_0..π'_7 from GOST R 34.12-2015, section 5.1.1. Pi[i] is applied to the i-th nibble of a
// word, counting from the least significant.
var Pi = [8][16]byte{ //nolint:gochecknoglobals // fixed by the standard
	{12, 4, 6, 2, 10, 5, 11, 9, 14, 8, 13, 7, 0, 3, 15, 1},
	{6, 8, 2, 3, 9, 10, 5, 12, 1, 14, 4, 7, 11, 13, 0, 15},
	{11, 3, 5, 8, 2, 15, 10, 13, 14, 1, 7, 4, 12, 9, 6, 0},
	{12, 8, 2, 1, 13, 4, 15, 6, 7, 0, 10, 5, 3, 14, 9, 11},
	{7, 15, 5, 10, 8, 1, 6, 13, 0, 9, 3, 14, 11, 4, 2, 12},
	{5, 13, 15, 6, 9, 2, 12, 10, 11, 7, 8, 1, 4, 3, 14, 0},
	{8, 14, 2, 5, 6, 9, 1, 12, 15, 4, 11, 0, 13, 10, 3, 7},
	{1, 7, 14, 13, 0, 5, 8, 3, 4, 15, 10, 6, 9, 12, 11, 2},
}

// Substitute applies the transformation t: each nibble of a is replaced by Pi[i][nibble], keeping its position.
func Substitute(a uint32) uint32 {
	return substitute(a)
}
