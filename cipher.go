package magma

import (
	"crypto/cipher"
	"encoding/binary"
)

// NewCipher returns a [cipher.Block] using the given 256-bit key. Blocks and keys are read most significant byte first,
// as in the test examples of GOST R 34.12-2015.
//
// It returns an error wrapping [ErrInvalidKeyLength] if key is not [KeySize] bytes long.
func NewCipher(key []byte) (cipher.Block, error) {
	s, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &blockCipher{s: s}, nil
}

type blockCipher struct {
	s Schedule
}

func (c *blockCipher) BlockSize() int {
	return BlockSize
}

func (c *blockCipher) Encrypt(dst, src []byte) {
	checkBlocks(dst, src)
	binary.BigEndian.PutUint64(dst, EncryptBlock(binary.BigEndian.Uint64(src), &c.s))
}

func (c *blockCipher) Decrypt(dst, src []byte) {
	checkBlocks(dst, src)
	binary.BigEndian.PutUint64(dst, DecryptBlock(binary.BigEndian.Uint64(src), &c.s))
}

func checkBlocks(dst, src []byte) {
	if len(src) < BlockSize {
		panic("magma: input not full block")
	}
	if len(dst) < BlockSize {
		panic("magma: output not full block")
	}
}

var _ cipher.Block = (*blockCipher)(nil)
