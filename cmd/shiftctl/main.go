// Package main is the entry point for the shiftctl command line tool.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/taxometer/backend/config"
	"github.com/taxometer/backend/internal/cli"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	// Logs go to stderr so tables and JSON on stdout stay clean.
	level := cfg.Log.SlogLevel()
	if level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, cli.NewOpener(cfg), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
