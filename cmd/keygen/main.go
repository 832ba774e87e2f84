// Keygen derives a toy RSA key pair from two primes read on stdin or from flags.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/vkupriya/go-rsakeygen/internal/keygen"
)

func main() {
	ctxroot, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	g, ctx := errgroup.WithContext(ctxroot)

	g.Go(func() error {
		if err := keygen.Start(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
			return fmt.Errorf("keygen failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	stop()
	if err != nil {
		log.Fatal(err)
	}
}
