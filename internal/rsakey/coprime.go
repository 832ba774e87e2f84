package rsakey

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Coprime returns an integer picked uniformly at random from the integers
// in [2, n-1] that are coprime to n.
func Coprime(random io.Reader, n *big.Int) (*big.Int, error) {
	if n.Sign() < 1 {
		return nil, fmt.Errorf("coprime(%s): %w", n, ErrInvalidArgument)
	}
	if n.Cmp(two) <= 0 {
		return nil, fmt.Errorf("coprime(%s): %w", n, ErrNoCoprime)
	}

	// candidates are [2, n-1]; n-1 is always coprime to n, so this terminates
	span := new(big.Int).Sub(n, two)
	for {
		c, err := rand.Int(random, span)
		if err != nil {
			return nil, fmt.Errorf("failed to read random candidate: %w", err)
		}
		c.Add(c, two)
		if isCoprime(c, n) {
			return c, nil
		}
	}
}

// Coprimes lists, in ascending order, every integer in [2, n-1] coprime to n.
// It walks the whole range and is meant for small n.
func Coprimes(n int64) []int64 {
	out := make([]int64, 0)
	bn := big.NewInt(n)
	for i := int64(2); i < n; i++ {
		if isCoprime(big.NewInt(i), bn) {
			out = append(out, i)
		}
	}
	return out
}
