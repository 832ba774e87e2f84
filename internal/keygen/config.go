package keygen

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vkupriya/go-rsakeygen/internal/rsakey"
)

type Config struct {
	Logger   *zap.Logger
	P        *big.Int // nil means ask on stdin
	Q        *big.Int // nil means ask on stdin
	Message  *big.Int
	Seed     int64
	TestKeys bool
}

func NewConfig(args []string) (*Config, error) {
	const envFile = ".env"

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	fset := flag.NewFlagSet("keygen", flag.ContinueOnError)
	p := fset.String("p", "", "First prime, prompted for when empty.")
	q := fset.String("q", "", "Second prime, prompted for when empty.")
	t := fset.Bool("t", false, "Test the generated keys without asking.")
	s := fset.Int64("s", 0, "Random seed for reproducible keys, 0 uses crypto/rand.")
	m := fset.String("m", strconv.FormatInt(rsakey.TestMessage, 10), "Message used to test the keys.")
	l := fset.String("l", "info", "Log level.")

	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if envP, ok := os.LookupEnv("PRIME_P"); ok {
		p = &envP
	}

	if envQ, ok := os.LookupEnv("PRIME_Q"); ok {
		q = &envQ
	}

	if envTest, ok := os.LookupEnv("TEST_KEYS"); ok {
		envTest, err := strconv.ParseBool(envTest)
		if err != nil {
			return nil, errors.New("failed to convert TEST_KEYS to bool")
		}
		t = &envTest
	}

	if envSeed, ok := os.LookupEnv("SEED"); ok {
		envSeed, err := strconv.ParseInt(envSeed, 10, 64)
		if err != nil {
			return nil, errors.New("failed to convert SEED to integer")
		}
		s = &envSeed
	}

	if envMessage, ok := os.LookupEnv("MESSAGE"); ok {
		m = &envMessage
	}

	if envLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		l = &envLevel
	}

	prime1, err := parseOptionalInt("p", *p)
	if err != nil {
		return nil, err
	}
	prime2, err := parseOptionalInt("q", *q)
	if err != nil {
		return nil, err
	}
	message, ok := new(big.Int).SetString(*m, 10)
	if !ok {
		return nil, fmt.Errorf("failed to convert message %q to integer", *m)
	}

	level, err := zap.ParseAtomicLevel(*l)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level %q: %w", *l, err)
	}
	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = level
	logger, err := logConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Logger: %w", err)
	}

	return &Config{
		Logger:   logger,
		P:        prime1,
		Q:        prime2,
		Message:  message,
		Seed:     *s,
		TestKeys: *t,
	}, nil
}

func parseOptionalInt(name, v string) (*big.Int, error) {
	if v == "" {
		return nil, nil
	}
	i, ok := new(big.Int).SetString(v, 10)
	if !ok {
		return nil, fmt.Errorf("failed to convert %s=%q to integer", name, v)
	}
	return i, nil
}
