package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"glitter.dev/glitter/internal/cli"
	"glitter.dev/glitter/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cli.NewRootCmd(version, commit, date)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		tui.PrintFatal(os.Stderr, err)
		os.Exit(1)
	}
}
