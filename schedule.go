package magma

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInvalidKeyLength is returned when a master key is not exactly [KeySize] bytes long.
var ErrInvalidKeyLength = errors.New("magma: invalid key length")

// A Schedule is the sequence of 32 round keys K_1..K_32 derived from a master key, indexed from zero.
type Schedule [Rounds]uint32

// ExpandKey splits a 256-bit master key into eight big-endian sub-keys and expands them into a [Schedule].
//
// It returns an error wrapping [ErrInvalidKeyLength] if key is not [KeySize] bytes long; keys are never truncated or
// padded.
func ExpandKey(key []byte) (Schedule, error) {
	if len(key) != KeySize {
		return Schedule{}, fmt.Errorf("%w: got %d bits, want %d", ErrInvalidKeyLength, len(key)*8, KeySize*8)
	}

	var k [8]uint32
	for i := range k {
		k[i] = binary.BigEndian.Uint32(key[i*4:])
	}
	return NewSchedule(k), nil
}

// NewSchedule expands the sub-keys k into a [Schedule]. The sub-keys are used in order three times, then once more in
// reverse order.
func NewSchedule(k [8]uint32) Schedule {
	var s Schedule
	for i := range 24 {
		s[i] = k[i%8]
	}
	for i := range 8 {
		s[24+i] = k[7-i]
	}
	return s
}
