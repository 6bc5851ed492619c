package primes

import (
	"strconv"
	"strings"

	"github.com/garethgeorge/gosieve/internal/sieve"
	"github.com/pkg/errors"
)

// FindInRange returns all primes in [lo, hi] in ascending order.
//
// This is the only place malformed requests are rejected; the sieve package
// itself clamps out-of-domain bounds rather than failing so it can be reused
// with pre-validated inputs.
func FindInRange(lo, hi int) ([]int, error) {
	if lo > hi {
		return nil, errors.Wrapf(ErrInvalidRange, "got [%d, %d]", lo, hi)
	}
	// No primes below 2; skip building a table entirely.
	if hi < 2 {
		return nil, nil
	}

	table := sieve.Build(hi)
	return table.PrimesWithin(sieve.Range{Lo: lo, Hi: hi}), nil
}

// ParseRange parses textual bounds into a range. Text that does not parse as
// an integer is rejected with ErrInvalidInput.
func ParseRange(lo, hi string) (sieve.Range, error) {
	loN, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return sieve.EmptyRange, errors.Wrapf(ErrInvalidInput, "lower bound %q", lo)
	}
	hiN, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return sieve.EmptyRange, errors.Wrapf(ErrInvalidInput, "upper bound %q", hi)
	}
	return sieve.Range{Lo: loN, Hi: hiN}, nil
}
