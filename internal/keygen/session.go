// Package keygen runs the interactive key generation dialogue: it collects
// two primes, derives a key pair and optionally round-trip tests it.
package keygen

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"github.com/vkupriya/go-rsakeygen/internal/rsakey"
)

//go:generate mockgen -destination=mocks/mock_generator.go -package=mock_keygen github.com/vkupriya/go-rsakeygen/internal/keygen KeyGenerator

// KeyGenerator derives and checks key pairs.
type KeyGenerator interface {
	Generate(p, q *big.Int) (*rsakey.Keys, error)
	Verify(keys *rsakey.Keys) bool
}

const (
	promptP       = "Please enter a prime number: "
	promptQ       = "Please enter a second prime number that is different than the first: "
	retryP        = "You must enter a positive integer."
	retryQ        = "You must enter a positive integer that is different than p."
	promptTest    = "Do you want to test the keys? Enter y or n."
	verifySuccess = "Success!"
	verifyFailure = "Something went wrong :("
)

var (
	// ErrInputClosed is returned when input ends before both primes are read.
	ErrInputClosed = errors.New("input closed before both primes were read")

	// ErrInvalidPrime is returned for a configured prime that fails validation.
	ErrInvalidPrime = errors.New("invalid prime")
)

type Session struct {
	config    *Config
	generator KeyGenerator
	in        *bufio.Scanner
	out       io.Writer
	id        uuid.UUID
}

func NewSession(c *Config, g KeyGenerator, in io.Reader, out io.Writer) *Session {
	return &Session{
		config:    c,
		generator: g,
		in:        bufio.NewScanner(in),
		out:       out,
		id:        uuid.New(),
	}
}

// Run walks the dialogue once and returns the generated keys.
func (s *Session) Run(ctx context.Context) (*rsakey.Keys, error) {
	logger := s.config.Logger.Sugar().With("run", s.id.String())

	p, err := s.prime(ctx, s.config.P, promptP, retryP, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read p: %w", err)
	}
	q, err := s.prime(ctx, s.config.Q, promptQ, retryQ, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read q: %w", err)
	}

	for _, v := range []*big.Int{p, q} {
		if !v.ProbablyPrime(20) {
			logger.Warnw("input is not prime, keys may not work", "value", v.String())
		}
	}
	logger.Debugw("derived key parameters",
		"n", rsakey.Modulus(p, q).String(),
		"phi", rsakey.Totient(p, q).String(),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	keys, err := s.generator.Generate(p, q)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keys: %w", err)
	}
	logger.Debug(spew.Sdump(keys))

	fmt.Fprintf(s.out, "The generated public key pair is: %s\n", keys.Public)
	fmt.Fprintf(s.out, "The generated private key pair is: %s\n", keys.Private)

	test := s.config.TestKeys
	if !test {
		fmt.Fprintln(s.out, promptTest)
		answer, rerr := s.readLine()
		if rerr != nil && !errors.Is(rerr, ErrInputClosed) {
			return nil, rerr
		}
		test = strings.TrimSpace(answer) == "y"
	}
	if !test {
		return keys, nil
	}

	if s.config.Message != nil && s.config.Message.Cmp(keys.Public.Modulus) >= 0 {
		logger.Infow("test message does not fit below the modulus and is reduced",
			"message", s.config.Message.String(),
			"reduced", rsakey.Reduce(s.config.Message, keys.Public.Modulus).String(),
		)
	}
	if s.generator.Verify(keys) {
		fmt.Fprintln(s.out, verifySuccess)
	} else {
		fmt.Fprintln(s.out, verifyFailure)
		logger.Warnw("key pair failed round trip",
			"public", keys.Public.String(),
			"private", keys.Private.String(),
		)
	}
	return keys, nil
}

// prime returns the configured value when set, otherwise prompts until a
// non-negative integer different from other is entered. Every rejection
// repeats the reason and the prompt.
func (s *Session) prime(ctx context.Context, preset *big.Int, prompt, retry string, other *big.Int) (*big.Int, error) {
	if preset != nil {
		if !acceptable(preset, other) {
			return nil, fmt.Errorf("%s: %w", preset, ErrInvalidPrime)
		}
		return preset, nil
	}

	fmt.Fprint(s.out, prompt)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := s.readLine()
		if err != nil {
			return nil, err
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			if v, ok := new(big.Int).SetString(fields[0], 10); ok && acceptable(v, other) {
				return v, nil
			}
		}
		fmt.Fprintln(s.out, retry)
		fmt.Fprint(s.out, prompt)
	}
}

func acceptable(v, other *big.Int) bool {
	if v.Sign() < 0 {
		return false
	}
	return other == nil || v.Cmp(other) != 0
}

func (s *Session) readLine() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return "", ErrInputClosed
}
