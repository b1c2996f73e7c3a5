package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eigenkit/ode"
)

const flagDerived = "show-derived"

// NewODECommand returns the odesystem program: print the worked solution of
// x' = A·x for A = [[1, -2], [1, 1]].
func NewODECommand(opts ...Option) *cobra.Command {
	cmd := newODECommand(gatherOptions(opts...))
	cmd.Use = "odesystem"
	addCommonFlags(cmd.PersistentFlags())

	return cmd
}

func newODECommand(o options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ode",
		Short: "Print the textbook solution of a 2x2 linear ODE system",
		Long: `Prints the eigen decomposition of A = [[1, -2], [1, 1]] and the
real-valued general solution of x' = A·x as given in the textbook.

With --show-derived the basis computed from the eigenpairs is appended,
followed by the result of checking the textbook vectors against A.
This command always prints text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runODE(cmd, o)
		},
	}
	cmd.Flags().Bool(flagDerived, false, "append the derived fundamental solutions")

	return cmd
}

func runODE(cmd *cobra.Command, o options) error {
	rt, err := newRuntime(cmd, o)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	style := ode.WithHeadingStyle(rt.style.Heading)

	tb, err := ode.NewTextbook()
	if err != nil {
		return err
	}
	if err = tb.Render(out, style); err != nil {
		return err
	}

	check := tb.Check()
	if check != nil {
		rt.log.Warn("textbook vectors do not solve the system", "error", check)
	}
	if !rt.cfg.ODE.ShowDerived {
		return nil
	}

	modes, err := ode.Derive(tb.Matrix())
	if err != nil {
		return err
	}
	rt.log.Debug("derived fundamental solutions", "modes", len(modes))

	fmt.Fprintln(out)
	if err = ode.RenderModes(out, modes, style); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if check != nil {
		fmt.Fprintf(out, "%s failed\n", rt.style.Heading("Textbook check:"))
		return check
	}
	_, err = fmt.Fprintf(out, "%s ok\n", rt.style.Heading("Textbook check:"))

	return err
}
