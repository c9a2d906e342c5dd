package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"logix-research/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
