package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// CLI-приложение для офлайн-проверки SKU.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errInvalidRecords) {
			fmt.Fprintf(os.Stderr, "validate-skus: %v\n", err)
		}
		os.Exit(1)
	}
}
