package rsakey

import "errors"

var (
	// ErrNonPositive is returned when an argument must be a positive integer.
	ErrNonPositive = errors.New("argument must be a positive integer")

	// ErrInvalidArgument is returned by Coprime for n < 1.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoCoprime is returned when no integer in [2, n-1] is coprime to n.
	ErrNoCoprime = errors.New("no coprime candidate")

	// ErrNoInverse is returned when the modular inverse does not exist.
	ErrNoInverse = errors.New("no modular inverse")

	// ErrDuplicatePrimes is returned when p and q are equal.
	ErrDuplicatePrimes = errors.New("primes must be distinct")

	// ErrInvariant marks a broken key generation invariant.
	ErrInvariant = errors.New("key generation invariant violated")
)
