package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lueurxax/inkguard/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.NewRootCommand().ExecuteContext(ctx)

	stop()

	if err != nil {
		// A blocked check already printed its verdict.
		if cli.GetExitCode(err) != cli.ExitFailure {
			fmt.Fprintf(os.Stderr, "inkguard: %v\n", err)
		}

		os.Exit(cli.GetExitCode(err))
	}
}
