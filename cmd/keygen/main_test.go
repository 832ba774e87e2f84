package main

import (
	"bytes"
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkupriya/go-rsakeygen/internal/keygen"
)

func TestKeygen(t *testing.T) {
	ctxroot, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctxroot)

	var out bytes.Buffer
	g.Go(func() error {
		if err := keygen.Start(ctx, []string{"-s", "12"}, strings.NewReader("61\n53\ny\n"), &out); err != nil {
			return fmt.Errorf("keygen failed: %w", err)
		}
		return nil
	})

	require.NoError(t, g.Wait())
	assert.Contains(t, out.String(), "The generated private key pair is: (")
	assert.True(t, strings.HasSuffix(out.String(), "Success!\n"))
}
