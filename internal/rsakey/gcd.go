// Package rsakey implements the arithmetic behind toy RSA key generation:
// gcd, coprime selection, modular inverse and a round-trip key check.
package rsakey

import (
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// GCD returns the greatest common divisor of two positive integers.
func GCD(first, second *big.Int) (*big.Int, error) {
	if first.Sign() <= 0 || second.Sign() <= 0 {
		return nil, fmt.Errorf("gcd(%s, %s): %w", first, second, ErrNonPositive)
	}
	return new(big.Int).GCD(nil, nil, first, second), nil
}

func isCoprime(a, b *big.Int) bool {
	return new(big.Int).GCD(nil, nil, a, b).Cmp(one) == 0
}
