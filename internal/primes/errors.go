package primes

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned when a bound is not a well-formed integer.
	ErrInvalidInput = errors.New("bounds must be integers")
	// ErrInvalidRange is returned when the lower bound exceeds the upper bound.
	ErrInvalidRange = errors.New("lower bound must be less than or equal to upper bound")
)
