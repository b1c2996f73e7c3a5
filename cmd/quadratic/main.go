// Command quadratic solves a*x^2 + b*x + c = 0 exactly.
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
	code := cli.Execute(ctx, cli.NewQuadraticCommand())
	stop()
	os.Exit(code)
}
