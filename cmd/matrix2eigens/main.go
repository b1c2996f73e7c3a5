// Command matrix2eigens reads a matrix file and prints its exact eigenvalues and eigenvectors.
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
	code := cli.Execute(ctx, cli.NewEigenCommand())
	stop()
	os.Exit(code)
}
