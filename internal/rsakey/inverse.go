package rsakey

import (
	"fmt"
	"math/big"
)

// ModularInverse returns the i in [0, mod-1] with (inverted * i) mod mod == 1.
func ModularInverse(inverted, mod *big.Int) (*big.Int, error) {
	if inverted.Sign() <= 0 || mod.Sign() <= 0 {
		return nil, fmt.Errorf("inverse of %s mod %s: %w", inverted, mod, ErrNonPositive)
	}
	// nothing is congruent to 1 modulo 1
	if mod.Cmp(one) == 0 {
		return nil, fmt.Errorf("inverse of %s mod %s: %w", inverted, mod, ErrNoInverse)
	}
	d := new(big.Int).ModInverse(inverted, mod)
	if d == nil {
		return nil, fmt.Errorf("inverse of %s mod %s: %w", inverted, mod, ErrNoInverse)
	}
	return d, nil
}
