package cli

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eigenkit/poly"
)

// degenerateMessage is printed, with exit code 0, when a is zero.
const degenerateMessage = "Error: Coefficient 'a' must not be 0 for a quadratic equation."

// NewQuadraticCommand returns the quadratic program: solve a*x^2 + b*x + c = 0
// exactly.
func NewQuadraticCommand(opts ...Option) *cobra.Command {
	cmd := newQuadraticCommand(gatherOptions(opts...))
	cmd.Use = "quadratic"
	addCommonFlags(cmd.PersistentFlags())

	return cmd
}

func newQuadraticCommand(o options) *cobra.Command {
	a := newRatValue(new(big.Rat))
	b := newRatValue(new(big.Rat))
	c := newRatValue(new(big.Rat))

	cmd := &cobra.Command{
		Use:   "quadratic",
		Short: "Solve a quadratic equation a*x^2 + b*x + c = 0",
		Long: `Prints the distinct roots of a*x^2 + b*x + c = 0 in exact form, e.g.
"The roots are: [1 - sqrt(2), 1 + sqrt(2)]" or "[-I, I]".

Coefficients accept integers, decimals and fractions and are used exactly,
so -a 0.1 means 1/10.`,
		Example: "  quadratic -a 1 -c -4\n  quadratic -a 1 -b -3 -c 2",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuadratic(cmd, o, a.Rat(), b.Rat(), c.Rat())
		},
	}

	fs := cmd.Flags()
	fs.VarP(a, "a", "a", "coefficient of x^2 (required)")
	fs.VarP(b, "b", "b", "coefficient of x")
	fs.VarP(c, "c", "c", "constant term (required)")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("c")

	return cmd
}

func runQuadratic(cmd *cobra.Command, o options, a, b, c *big.Rat) error {
	rt, err := newRuntime(cmd, o)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	roots, err := poly.SolveQuadratic(a, b, c)
	if errors.Is(err, poly.ErrDegenerate) {
		rt.log.Debug("leading coefficient is zero", "b", b.RatString(), "c", c.RatString())
		if rt.cfg.Output.Format == formatText {
			_, err = fmt.Fprintln(out, degenerateMessage)
			return err
		}
		rep := QuadraticReport{A: a.RatString(), B: b.RatString(), C: c.RatString(), Error: degenerateMessage}
		return writeStructured(out, rt.cfg.Output.Format, rep)
	}
	if err != nil {
		return err
	}
	rt.log.Info("quadratic solved", "roots", len(roots))

	if rt.cfg.Output.Format == formatText {
		return writeRootsText(out, roots)
	}

	return writeStructured(out, rt.cfg.Output.Format, newQuadraticReport(a, b, c, roots))
}
