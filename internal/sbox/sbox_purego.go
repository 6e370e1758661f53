//go:build purego

package sbox

func substitute(a uint32) uint32 {
	return substituteGeneric(a)
}
