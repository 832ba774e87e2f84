package rsakey

import (
	"crypto/rand"
	"io"
	"math/big"
	mrand "math/rand"
)

// Generator binds Generate and VerifyMessage to a random source and a test message.
type Generator struct {
	random  io.Reader
	message *big.Int
}

// NewGenerator returns a Generator drawing from random. A nil random uses crypto/rand.
func NewGenerator(random io.Reader, message *big.Int) *Generator {
	if random == nil {
		random = rand.Reader
	}
	if message == nil {
		message = big.NewInt(TestMessage)
	}
	return &Generator{
		random:  random,
		message: message,
	}
}

// SeededReader returns a deterministic random source. Seed 0 means crypto/rand.
func SeededReader(seed int64) io.Reader {
	if seed == 0 {
		return rand.Reader
	}
	return mrand.New(mrand.NewSource(seed)) //nolint:gosec // reproducible runs
}

func (g *Generator) Generate(p, q *big.Int) (*Keys, error) {
	return Generate(g.random, p, q)
}

func (g *Generator) Verify(keys *Keys) bool {
	return VerifyMessage(g.message, keys.Public.Exponent, keys.Private.Exponent, keys.Public.Modulus)
}

// Message returns the round-trip test message.
func (g *Generator) Message() *big.Int {
	return new(big.Int).Set(g.message)
}
