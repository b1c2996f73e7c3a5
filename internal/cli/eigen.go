package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eigenkit/matrix"
)

const (
	flagDelimiter = "delimiter"
	flagWatch     = "watch"
	flagDebounce  = "debounce"
)

// NewEigenCommand returns the matrix2eigens program: read a matrix file and
// print its eigenvalues and eigenvectors.
func NewEigenCommand(opts ...Option) *cobra.Command {
	cmd := newEigenCommand(gatherOptions(opts...))
	cmd.Use = "matrix2eigens <matrix_file_path>"
	addCommonFlags(cmd.PersistentFlags())

	return cmd
}

func newEigenCommand(o options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eigen <matrix_file_path>",
		Short: "Print the exact eigenvalues and eigenvectors of a matrix file",
		Long: `Reads a matrix from a text file, one row per line, and prints its exact
eigenvalues with their algebraic multiplicities followed by a basis of each
eigenspace.

Entries are integers, decimals (0.25, 1e-3) or fractions (3/4). Rows are
separated by whitespace unless --delimiter is given.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &UsageError{Usage: fmt.Sprintf("Usage: %s <matrix_file_path>", cmd.CommandPath())}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEigen(cmd, o, args[0])
		},
	}

	fs := cmd.Flags()
	fs.StringP(flagDelimiter, "d", "", "entry separator within a row (default: whitespace)")
	fs.BoolP(flagWatch, "w", false, "recompute whenever the file changes")
	fs.Duration(flagDebounce, 0, "quiet period before recomputing in --watch mode (default 100ms)")

	return cmd
}

func runEigen(cmd *cobra.Command, o options, path string) error {
	rt, err := newRuntime(cmd, o)
	if err != nil {
		return err
	}
	log := rt.log.With("path", path)

	compute := func() error {
		log.Debug("reading matrix")
		res, err := matrix.ComputeEigenFromFile(rt.fs, path, matrix.WithDelimiter(rt.cfg.Matrix.Delimiter))
		if err != nil {
			log.Debug("eigen decomposition failed", "error", err)
			return err
		}
		log.Info("eigen decomposition done",
			"rows", res.Matrix.Rows(),
			"eigenvalues", len(res.Eigenvalues),
		)

		return writeEigen(cmd, rt, res)
	}

	watch, _ := cmd.Flags().GetBool(flagWatch)
	if !watch {
		return compute()
	}

	fw, err := newFileWatcher(path, rt.cfg.Watch.Debounce, log)
	if err != nil {
		return err
	}
	report := func() {
		if err := compute(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "An error occurred: %v\n", err)
		}
	}
	report()
	log.Info("watching for changes", "debounce", rt.cfg.Watch.Debounce.String())

	return fw.run(cmd.Context(), func() {
		fmt.Fprintln(cmd.OutOrStdout())
		report()
	})
}

func writeEigen(cmd *cobra.Command, rt *runtime, res *matrix.EigenResult) error {
	if rt.cfg.Output.Format == formatText {
		return writeEigenText(cmd.OutOrStdout(), res, rt.style)
	}

	return writeStructured(cmd.OutOrStdout(), rt.cfg.Output.Format, NewEigenReport(res))
}
