package keygen

import (
	"context"
	"fmt"
	"io"

	"github.com/vkupriya/go-rsakeygen/internal/rsakey"
)

// Start builds the configuration from args and the environment and runs
// one key generation session over in and out.
func Start(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	c, err := NewConfig(args)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	defer func() {
		_ = c.Logger.Sync()
	}()

	g := rsakey.NewGenerator(rsakey.SeededReader(c.Seed), c.Message)
	s := NewSession(c, g, in, out)

	if _, err := s.Run(ctx); err != nil {
		c.Logger.Sugar().Errorw("key generation failed", "error", err)
		return fmt.Errorf("failed to run session: %w", err)
	}
	return nil
}
