package rsakey

import (
	"fmt"
	"io"
	"math/big"
)

// KeyPair is an (exponent, modulus) tuple.
type KeyPair struct {
	Exponent *big.Int
	Modulus  *big.Int
}

func (k KeyPair) String() string {
	return fmt.Sprintf("(%s, %s)", k.Exponent, k.Modulus)
}

// Keys holds a generated public/private pair and the totient they were derived from.
type Keys struct {
	Public  KeyPair
	Private KeyPair
	Totient *big.Int
}

// Modulus returns n = p * q.
func Modulus(p, q *big.Int) *big.Int {
	return new(big.Int).Mul(p, q)
}

// Totient returns phi = (p - 1) * (q - 1).
func Totient(p, q *big.Int) *big.Int {
	p1 := new(big.Int).Sub(p, one)
	q1 := new(big.Int).Sub(q, one)
	return p1.Mul(p1, q1)
}

// Generate derives a key pair from primes p and q. The primes are not
// checked for primality.
func Generate(random io.Reader, p, q *big.Int) (*Keys, error) {
	if p.Cmp(q) == 0 {
		return nil, fmt.Errorf("p = q = %s: %w", p, ErrDuplicatePrimes)
	}

	n := Modulus(p, q)
	phi := Totient(p, q)

	e, err := Coprime(random, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to select public exponent for totient %s: %w", phi, err)
	}

	d, err := ModularInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
	}

	return &Keys{
		Public:  KeyPair{Exponent: e, Modulus: n},
		Private: KeyPair{Exponent: d, Modulus: new(big.Int).Set(n)},
		Totient: phi,
	}, nil
}
