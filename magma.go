// Package magma implements the 64-bit block cipher of GOST R 34.12-2015 ("Magma"): a 32-round Feistel network with a
// 256-bit key.
//
// The package exposes the cipher at two levels. The integer level works on 32-bit words and 64-bit blocks and mirrors
// the transformations of the standard: the substitution t ([Substitute]), the round function g ([RoundFunction]), the
// round transformations G and G* ([FeistelStep] and [FeistelFinal]), the key schedule ([ExpandKey]), and the block
// transformations E and D ([EncryptBlock] and [DecryptBlock]). The byte level ([NewCipher]) adapts these to
// [crypto/cipher.Block], reading and writing blocks most significant byte first.
//
// Only the single-block primitive is provided. Modes of operation, padding, and key management are left to the caller.
//
// All operations are pure functions of their arguments. A [Schedule] is never modified after it is built and may be
// shared between goroutines.
package magma

import (
	"math/bits"

	"github.com/codahale/magma/internal/sbox"
)

const (
	// BlockSize is the block size of the cipher, in bytes.
	BlockSize = 8

	// KeySize is the size of a master key, in bytes.
	KeySize = 32

	// Rounds is the number of Feistel rounds, and the number of round keys in a [Schedule].
	Rounds = 32
)

// Substitute applies the nonlinear bijection t to a: the i-th nibble of a, counting from the least significant, is
// replaced using the i-th substitution table.
func Substitute(a uint32) uint32 {
	return sbox.Substitute(a)
}

// RotateLeft11 rotates v left by 11 bits.
func RotateLeft11(v uint32) uint32 {
	return bits.RotateLeft32(v, 11)
}

// RoundFunction returns g[k](a): a and k are added modulo 2^32, substituted, and rotated left by 11 bits.
func RoundFunction(k, a uint32) uint32 {
	return RotateLeft11(Substitute(a + k))
}

// FeistelStep applies G[k] to the halves (a1, a0) of a block. The low half becomes the new high half, and the new low
// half is a1 ⊕ g[k](a0).
func FeistelStep(k, a1, a0 uint32) (uint32, uint32) {
	return a0, a1 ^ RoundFunction(k, a0)
}

// FeistelFinal applies G*[k] to the halves (a1, a0) of a block. Unlike [FeistelStep] the halves are not swapped: the
// result is (a1 ⊕ g[k](a0)) || a0.
func FeistelFinal(k, a1, a0 uint32) uint64 {
	return uint64(a1^RoundFunction(k, a0))<<32 | uint64(a0)
}
