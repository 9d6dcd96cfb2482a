// Package main is the entry point for the todoweb CLI and web server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todoweb/internal/backend/rest"
	"todoweb/internal/cli"
	"todoweb/internal/commands"
	"todoweb/internal/config"
	"todoweb/internal/logger"
	"todoweb/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// The dispatcher initializes the logger before calling the factory.
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		c, err := rest.New(cfg)
		if err != nil {
			return nil, err
		}
		return c.WithLogger(logger.With("component", "rest")), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
