package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigenkit/internal/cli"
)

const odeOutput = `Matrix:
Matrix([
    [1, -2],
    [1, 1],
])

Eigenvalues and Eigenvectors:
Eigenvalue: 1 - sqrt(2)*I, Multiplicity: 1
  Eigenvector: Matrix([
    [-sqrt(2)*I],
    [1],
])
Eigenvalue: 1 + sqrt(2)*I, Multiplicity: 1
  Eigenvector: Matrix([
    [sqrt(2)*I],
    [1],
])

Real-valued General Solution:
x(t) = e^(1t) * (
  A * Matrix([
    [-2*sin(sqrt(2)*t)],
    [sqrt(2)*cos(sqrt(2)*t)],
]) +
  B * Matrix([
    [2*cos(sqrt(2)*t)],
    [sqrt(2)*sin(sqrt(2)*t)],
])
)
`

func TestODE_Golden(t *testing.T) {
	for run := 0; run < 3; run++ {
		stdout, stderr, code := execute(t, cli.NewODECommand())
		require.Equal(t, cli.ExitOK, code, stderr)
		assert.Equal(t, odeOutput, stdout)
		assert.Empty(t, stderr)
	}
}

func TestODE_ShowDerived(t *testing.T) {
	stdout, stderr, code := execute(t, cli.NewODECommand(), "--show-derived")
	require.Equal(t, cli.ExitOK, code, stderr)

	require.True(t, strings.HasPrefix(stdout, odeOutput))
	assert.Equal(t, `
Derived Fundamental Solutions:
x1(t) = e^(1t) * Matrix([
    [-sqrt(2)*sin(sqrt(2)*t)],
    [cos(sqrt(2)*t)],
])
x2(t) = e^(1t) * Matrix([
    [sqrt(2)*cos(sqrt(2)*t)],
    [sin(sqrt(2)*t)],
])

Textbook check: ok
`, strings.TrimPrefix(stdout, odeOutput))
}

func TestODE_ShowDerivedFromEnv(t *testing.T) {
	t.Setenv("EIGENKIT_ODE_SHOW_DERIVED", "true")
	stdout, _, code := execute(t, cli.NewODECommand())
	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, stdout, "Textbook check: ok\n")
}

func TestODE_RejectsArguments(t *testing.T) {
	stdout, stderr, code := execute(t, cli.NewODECommand(), "extra")
	assert.Equal(t, cli.ExitUsage, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "An error occurred: ")
}

func TestRoot_Subcommands(t *testing.T) {
	fs := memFs(t, map[string]string{"id.txt": "1 0\n0 1\n"})

	stdout, stderr, code := execute(t, cli.NewRootCommand(cli.WithFs(fs)), "eigen", "id.txt")
	require.Equal(t, cli.ExitOK, code, stderr)
	assert.Equal(t, identityOutput, stdout)

	stdout, stderr, code = execute(t, cli.NewRootCommand(), "quadratic", "-a", "1", "-c", "-4")
	require.Equal(t, cli.ExitOK, code, stderr)
	assert.Equal(t, "The roots are: [-2, 2]\n", stdout)

	stdout, stderr, code = execute(t, cli.NewRootCommand(), "ode")
	require.Equal(t, cli.ExitOK, code, stderr)
	assert.Equal(t, odeOutput, stdout)

	_, stderr, code = execute(t, cli.NewRootCommand(cli.WithFs(fs)), "eigen")
	assert.Equal(t, cli.ExitUsage, code)
	assert.Equal(t, "Usage: eigenkit eigen <matrix_file_path>\n", stderr)

	stdout, stderr, code = execute(t, cli.NewRootCommand(cli.WithFs(fs)), "--output", "yaml", "eigen", "id.txt")
	require.Equal(t, cli.ExitOK, code, stderr)
	assert.Contains(t, stdout, "eigenvalues:\n")
}
