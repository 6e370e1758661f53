package magma_test

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/codahale/magma"
	"github.com/codahale/magma/internal/testdata"
)

func TestExpandKey(t *testing.T) {
	s, err := magma.ExpandKey(standardKey(t))
	if err != nil {
		t.Fatal(err)
	}

	// GOST R 34.12-2015, A.2.3
	for _, tc := range []struct {
		i    int
		want uint32
	}{
		{0, 0xffeeddcc}, {1, 0xbbaa9988}, {2, 0x77665544}, {3, 0x33221100},
		{4, 0xf0f1f2f3}, {5, 0xf4f5f6f7}, {6, 0xf8f9fafb}, {7, 0xfcfdfeff},
		{8, 0xffeeddcc}, {15, 0xfcfdfeff}, {16, 0xffeeddcc}, {23, 0xfcfdfeff},
		{24, 0xfcfdfeff}, {25, 0xf8f9fafb}, {26, 0xf4f5f6f7}, {27, 0xf0f1f2f3},
		{28, 0x33221100}, {29, 0x77665544}, {30, 0xbbaa9988}, {31, 0xffeeddcc},
	} {
		if got := s[tc.i]; got != tc.want {
			t.Errorf("K%d = %08x, want = %08x", tc.i+1, got, tc.want)
		}
	}
}

func TestExpandKey_Structure(t *testing.T) {
	drbg := testdata.New("magma schedule")
	for range 1000 {
		key := drbg.Data(magma.KeySize)
		s, err := magma.ExpandKey(key)
		if err != nil {
			t.Fatal(err)
		}

		var k [8]uint32
		for i := range k {
			k[i] = binary.BigEndian.Uint32(key[4*i:])
		}

		for i := range 24 {
			if s[i] != k[i%8] {
				t.Fatalf("ExpandKey(%x)[%d] = %08x, want = %08x", key, i, s[i], k[i%8])
			}
		}
		for i := range 8 {
			if s[24+i] != k[7-i] {
				t.Fatalf("ExpandKey(%x)[%d] = %08x, want = %08x", key, 24+i, s[24+i], k[7-i])
			}
		}

		if got, want := magma.NewSchedule(k), s; got != want {
			t.Fatalf("NewSchedule(%08x) = %08x, want = %08x", k, got, want)
		}
	}
}

func TestExpandKey_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 1, 16, 31, 33, 64} {
		s, err := magma.ExpandKey(make([]byte, n))
		if !errors.Is(err, magma.ErrInvalidKeyLength) {
			t.Errorf("ExpandKey(%d bytes) = %v, want = ErrInvalidKeyLength", n, err)
		}
		if s != (magma.Schedule{}) {
			t.Errorf("ExpandKey(%d bytes) returned a non-zero schedule", n)
		}
	}

	_, err := magma.ExpandKey(make([]byte, 33))
	if got, want := err.Error(), "got 264 bits, want 256"; !strings.Contains(got, want) {
		t.Errorf("ExpandKey(33 bytes) = %q, want it to contain %q", got, want)
	}
}

func TestExpandKey_DoesNotRetainKey(t *testing.T) {
	key := standardKey(t)
	s, err := magma.ExpandKey(key)
	if err != nil {
		t.Fatal(err)
	}

	clear(key)
	if got, want := s[0], uint32(0xffeeddcc); got != want {
		t.Errorf("K1 after clearing key = %08x, want = %08x", got, want)
	}
}

func standardKey(t testing.TB) []byte {
	t.Helper()

	key, err := hex.DecodeString("ffeeddccbbaa99887766554433221100f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	if err != nil {
		t.Fatal(err)
	}
	return key
}
