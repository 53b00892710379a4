package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gasanalysis/internal/platform/logger"
)

func main() {
	opts := logger.FromEnv()
	if opts.Service == "" {
		opts.Service = "analyze-transactions"
	}
	logger.Init(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
