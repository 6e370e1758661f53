// Command magma encrypts and decrypts single 64-bit blocks with the GOST R 34.12-2015 block cipher, and exposes its
// individual transformations for inspection.
//
// Keys, blocks, and words are given in hex, most significant byte first:
//
//	magma -op encrypt -key ffeeddcc...fcfdfeff -block fedcba9876543210
//	magma -op decrypt -key ffeeddcc...fcfdfeff -block 4ee901e5c2d8ca3d
//	magma -op schedule -key ffeeddcc...fcfdfeff
//	magma -op t -word fdb97531
//	magma -op g -round-key 87654321 -word fedcba98
//	magma -op verify
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codahale/magma"
	"github.com/codahale/magma/internal/hexfmt"
	"github.com/codahale/magma/kat"
)

var errUnknownOp = errors.New("unknown operation")

func main() {
	log := slog.New(slog.Default().Handler())

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Error("failed", "err", err)
		os.Exit(1)
	}
}

//nolint:cyclop // one case per operation
func run(args []string, stdout io.Writer, log *slog.Logger) error {
	fs := flag.NewFlagSet("magma", flag.ContinueOnError)
	var (
		op       = fs.String("op", "encrypt", "the operation: encrypt, decrypt, schedule, t, g, or verify")
		key      = fs.String("key", "", "the 256-bit key (64 hex characters)")
		block    = fs.String("block", "", "the 64-bit block (16 hex characters)")
		word     = fs.String("word", "", "the 32-bit word (8 hex characters)")
		roundKey = fs.String("round-key", "", "the 32-bit round key for g (8 hex characters)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch *op {
	case "encrypt", "decrypt":
		s, err := schedule(*key)
		if err != nil {
			return err
		}
		in, err := hexfmt.ParseBlock("block", *block)
		if err != nil {
			return err
		}

		var out uint64
		if *op == "encrypt" {
			out = magma.EncryptBlock(in, &s)
		} else {
			out = magma.DecryptBlock(in, &s)
		}
		log.Debug(*op, "in", hexfmt.FormatBlock(in), "out", hexfmt.FormatBlock(out))
		_, err = fmt.Fprintln(stdout, hexfmt.FormatBlock(out))
		return err
	case "schedule":
		s, err := schedule(*key)
		if err != nil {
			return err
		}
		for i, k := range s {
			if _, err := fmt.Fprintf(stdout, "K%-2d = %s\n", i+1, hexfmt.FormatWord(k)); err != nil {
				return err
			}
		}
		return nil
	case "t":
		a, err := hexfmt.ParseWord("word", *word)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, hexfmt.FormatWord(magma.Substitute(a)))
		return err
	case "g":
		k, err := hexfmt.ParseWord("round key", *roundKey)
		if err != nil {
			return err
		}
		a, err := hexfmt.ParseWord("word", *word)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, hexfmt.FormatWord(magma.RoundFunction(k, a)))
		return err
	case "verify":
		if err := kat.VerifyAll(); err != nil {
			return err
		}
		log.Info("all known-answer tests passed", "vectors", len(kat.Vectors()))
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownOp, *op)
	}
}

func schedule(key string) (magma.Schedule, error) {
	k, err := hexfmt.ParseKey("key", key)
	if err != nil {
		return magma.Schedule{}, err
	}
	return magma.ExpandKey(k)
}
