// Package kat verifies the magma package against the known-answer examples published in GOST R 34.12-2015 and
// GOST R 34.13-2015.
//
// A mismatch is never a recoverable condition: it means the implementation does not conform to the standard. The
// returned [*MismatchError] names the stage which diverged first, so the defect can be traced to the substitution, the
// round function, the key schedule, or one direction of the block transformation.
package kat

import (
	"errors"
	"fmt"

	"github.com/codahale/magma"
)

// ErrConformance is matched by every [*MismatchError].
var ErrConformance = errors.New("kat: implementation does not conform")

// Stage identifies the transformation being checked.
type Stage int

const (
	// StageSubstitution checks the substitution t.
	StageSubstitution Stage = iota
	// StageRoundFunction checks the round function g.
	StageRoundFunction
	// StageRoundKey checks one round key of the schedule.
	StageRoundKey
	// StageEncrypt checks the encryption transformation.
	StageEncrypt
	// StageDecrypt checks the decryption transformation.
	StageDecrypt
)

func (s Stage) String() string {
	switch s {
	case StageSubstitution:
		return "substitution"
	case StageRoundFunction:
		return "round function"
	case StageRoundKey:
		return "round key"
	case StageEncrypt:
		return "encrypt"
	case StageDecrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// A MismatchError reports the first value which differed from the published one.
type MismatchError struct {
	Vector string
	Stage  Stage
	Index  int // position of the value within its stage, e.g. the round key index
	Got    uint64
	Want   uint64
}

func (e *MismatchError) Error() string {
	width := 8
	if e.Stage == StageEncrypt || e.Stage == StageDecrypt {
		width = 16
	}
	return fmt.Sprintf("kat: %s: %s %d: got %0*x, want %0*x", e.Vector, e.Stage, e.Index, width, e.Got, width, e.Want)
}

// Is reports whether target is [ErrConformance].
func (e *MismatchError) Is(target error) bool {
	return target == ErrConformance //nolint:errorlint // sentinel comparison
}

// Verify checks v against the magma package, stage by stage, and returns the first mismatch.
func Verify(v Vector) error {
	for i, sv := range v.Substitutions {
		if got := magma.Substitute(sv.In); got != sv.Out {
			return mismatch(v, StageSubstitution, i, uint64(got), uint64(sv.Out))
		}
	}

	for i, rv := range v.RoundFunctions {
		if got := magma.RoundFunction(rv.Key, rv.In); got != rv.Out {
			return mismatch(v, StageRoundFunction, i, uint64(got), uint64(rv.Out))
		}
	}

	s, err := magma.ExpandKey(v.Key)
	if err != nil {
		return fmt.Errorf("kat: %s: %w", v.Name, err)
	}

	for i, want := range v.RoundKeys {
		if s[i] != want {
			return mismatch(v, StageRoundKey, i, uint64(s[i]), uint64(want))
		}
	}

	if got := magma.EncryptBlock(v.Plaintext, &s); got != v.Ciphertext {
		return mismatch(v, StageEncrypt, 0, got, v.Ciphertext)
	}

	if got := magma.DecryptBlock(v.Ciphertext, &s); got != v.Plaintext {
		return mismatch(v, StageDecrypt, 0, got, v.Plaintext)
	}

	return nil
}

// VerifyAll runs [Verify] on every vector returned by [Vectors], stopping at the first failure.
func VerifyAll() error {
	for _, v := range Vectors() {
		if err := Verify(v); err != nil {
			return err
		}
	}
	return nil
}

func mismatch(v Vector, stage Stage, idx int, got, want uint64) error {
	return &MismatchError{Vector: v.Name, Stage: stage, Index: idx, Got: got, Want: want}
}
