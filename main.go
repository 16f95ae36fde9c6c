package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"marketadapter/internal/cli"
)

func main() {
	// Cancel the in-flight request on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Run(ctx, os.Args[1:], cli.Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})

	stop()
	os.Exit(code)
}
