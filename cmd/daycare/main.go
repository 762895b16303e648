// Package main is the entry point for the daycare CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"daycare/internal/backend/googletasks"
	"daycare/internal/cli"
	"daycare/internal/commands"
	"daycare/internal/config"
	"daycare/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// Google Tasks backs the sync command
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return googletasks.New(ctx, cfg)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
