package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Execute runs cmd and returns the process exit code. Errors are reported on
// the command's stderr: a UsageError prints its usage line, anything else
// prints "An error occurred: <err>".
func Execute(ctx context.Context, cmd *cobra.Command) int {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(cmd.ErrOrStderr(), usage.Usage)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "An error occurred: %v\n", err)
	}

	return ExitCode(err)
}
