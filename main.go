package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"profeed/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.RootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
