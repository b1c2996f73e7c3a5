// Command odesystem prints the worked solution of a 2x2 linear ODE system.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/eigenkit/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, cli.NewODECommand())
	stop()
	os.Exit(code)
}
