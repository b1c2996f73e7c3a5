// Package cli builds the cobra commands behind the matrix2eigens, quadratic
// and odesystem programs and the eigenkit umbrella binary.
//
// Every command loads its configuration through internal/config, logs to
// stderr through internal/logging and writes results to stdout. Execute maps
// returned errors to exit codes (see ExitCode).
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand returns the eigenkit umbrella command with the three
// programs as the eigen, quadratic and ode subcommands.
func NewRootCommand(opts ...Option) *cobra.Command {
	o := gatherOptions(opts...)

	root := &cobra.Command{
		Use:   "eigenkit",
		Short: "Exact eigen decomposition, quadratic roots and a worked ODE system",
		Long: `eigenkit computes with exact numbers: rationals and values of the form
a + b*sqrt(d). Results print in the same text form as the standalone
matrix2eigens, quadratic and odesystem programs.`,
		Args: cobra.NoArgs,
	}
	addCommonFlags(root.PersistentFlags())

	root.AddCommand(
		newEigenCommand(o),
		newQuadraticCommand(o),
		newODECommand(o),
	)

	return root
}
