package powmod

import (
	"math"
	"math/big"
)

func raw(m, e *big.Int) *big.Int {
	return new(big.Int).Exp(m, e, nil) // want `\(\*big.Int\).Exp called without a modulus.`
}

func modular(m, e, n *big.Int) *big.Int {
	return new(big.Int).Exp(m, e, n)
}

func float(m, e float64) float64 {
	return math.Pow(m, e) // want "math.Pow used, use \\(\\*big.Int\\).Exp with a modulus."
}
