// Package hexfmt reads and writes the fixed-length hexadecimal forms of keys, blocks, and words.
package hexfmt

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Lengths of each value in hex characters.
const (
	KeyLen   = 64
	BlockLen = 16
	WordLen  = 8
)

// ErrInputFormat is matched by every [*InputFormatError].
var ErrInputFormat = errors.New("hexfmt: malformed input")

// An InputFormatError describes a value which is not valid hex of the required length.
type InputFormatError struct {
	Field  string // what the value was for, e.g. "key"
	Input  string
	Reason string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("hexfmt: invalid %s %q: %s", e.Field, e.Input, e.Reason)
}

// Is reports whether target is [ErrInputFormat].
func (e *InputFormatError) Is(target error) bool {
	return target == ErrInputFormat //nolint:errorlint // sentinel comparison
}

// ParseKey parses a 256-bit key from exactly 64 hex characters.
func ParseKey(field, s string) ([]byte, error) {
	return decode(field, s, KeyLen)
}

// ParseBlock parses a 64-bit block from exactly 16 hex characters, most significant first.
func ParseBlock(field, s string) (uint64, error) {
	b, err := decode(field, s, BlockLen)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ParseWord parses a 32-bit word from exactly 8 hex characters, most significant first.
func ParseWord(field, s string) (uint32, error) {
	b, err := decode(field, s, WordLen)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// FormatBlock returns the 16-character form of b.
func FormatBlock(b uint64) string {
	return fmt.Sprintf("%016x", b)
}

// FormatWord returns the 8-character form of w.
func FormatWord(w uint32) string {
	return fmt.Sprintf("%08x", w)
}

func decode(field, s string, n int) ([]byte, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != n {
		return nil, &InputFormatError{
			Field:  field,
			Input:  s,
			Reason: fmt.Sprintf("want %d hex characters, got %d", n, len(s)),
		}
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &InputFormatError{Field: field, Input: s, Reason: "want only hex characters (0-9, a-f)"}
	}
	return b, nil
}
