package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eigenkit/internal/cli"
)

// execute runs cmd in isolation from any user configuration.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if args == nil {
		args = []string{}
	}

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	code = cli.Execute(context.Background(), cmd)

	return out.String(), errOut.String(), code
}

// memFs returns an in-memory filesystem holding the given files.
func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(body), 0o644))
	}

	return fs
}

const identityOutput = `Matrix:
Matrix([[1, 0], [0, 1]])

Eigenvalues:
  1: multiplicity 2

Eigenvectors:
  Eigenvalue: 1, Multiplicity: 2
    Eigenvector: Matrix([[1], [0]])
    Eigenvector: Matrix([[0], [1]])
`

const symmetricOutput = `Matrix:
Matrix([[2, 1], [1, 2]])

Eigenvalues:
  1: multiplicity 1
  3: multiplicity 1

Eigenvectors:
  Eigenvalue: 1, Multiplicity: 1
    Eigenvector: Matrix([[-1], [1]])
  Eigenvalue: 3, Multiplicity: 1
    Eigenvector: Matrix([[1], [1]])
`

func TestEigen_Text(t *testing.T) {
	fs := memFs(t, map[string]string{
		"identity.txt":  "1 0\n0 1\n",
		"symmetric.txt": "2 1\n\n1\t2\n",
		"comma.txt":     "2, 1\n1, 2\n",
	})

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"identity", []string{"identity.txt"}, identityOutput},
		{"symmetric", []string{"symmetric.txt"}, symmetricOutput},
		{"delimiter", []string{"--delimiter", ",", "comma.txt"}, symmetricOutput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, code := execute(t, cli.NewEigenCommand(cli.WithFs(fs)), tc.args...)
			require.Equal(t, cli.ExitOK, code, stderr)
			assert.Equal(t, tc.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestEigen_ComplexPair(t *testing.T) {
	fs := memFs(t, map[string]string{"a.txt": "1 -2\n1 1\n"})

	stdout, _, code := execute(t, cli.NewEigenCommand(cli.WithFs(fs)), "a.txt")
	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, stdout, "  1 - sqrt(2)*I: multiplicity 1\n  1 + sqrt(2)*I: multiplicity 1\n")
	assert.Contains(t, stdout, "  Eigenvalue: 1 - sqrt(2)*I, Multiplicity: 1\n    Eigenvector: Matrix([[-sqrt(2)*I], [1]])\n")
	assert.Contains(t, stdout, "  Eigenvalue: 1 + sqrt(2)*I, Multiplicity: 1\n    Eigenvector: Matrix([[sqrt(2)*I], [1]])\n")
}

func TestEigen_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"a.txt", "b.txt"}} {
		stdout, stderr, code := execute(t, cli.NewEigenCommand(cli.WithFs(afero.NewMemMapFs())), args...)
		assert.Equal(t, cli.ExitUsage, code)
		assert.Empty(t, stdout)
		assert.Equal(t, "Usage: matrix2eigens <matrix_file_path>\n", stderr)
	}
}

func TestEigen_Errors(t *testing.T) {
	fs := memFs(t, map[string]string{
		"ragged.txt":    "1 2\n3\n",
		"code.txt":      "1 2\n3 __import__('os')\n",
		"empty.txt":     "\n\n",
		"wide.txt":      "1 2 3\n4 5 6\n",
		"companion.txt": "0 0 2\n1 0 0\n0 1 0\n",
	})

	cases := []struct {
		file string
		code int
	}{
		{"missing.txt", cli.ExitInput},
		{"ragged.txt", cli.ExitInput},
		{"code.txt", cli.ExitInput},
		{"empty.txt", cli.ExitInput},
		{"wide.txt", cli.ExitInput},
		{"companion.txt", cli.ExitCompute},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			stdout, stderr, code := execute(t, cli.NewEigenCommand(cli.WithFs(fs)), tc.file)
			assert.Equal(t, tc.code, code)
			assert.Empty(t, stdout)
			assert.True(t, strings.HasPrefix(stderr, "An error occurred: "), stderr)
		})
	}
}

func TestEigen_StructuredOutput(t *testing.T) {
	fs := memFs(t, map[string]string{"a.txt": "2 1\n1 2\n"})

	want := cli.EigenReport{
		Matrix: [][]string{{"2", "1"}, {"1", "2"}},
		Eigenvalues: []cli.EigenvalueReport{
			{Value: "1", Multiplicity: 1},
			{Value: "3", Multiplicity: 1},
		},
		Eigenvectors: []cli.EigenspaceReport{
			{Value: "1", Multiplicity: 1, Vectors: [][]string{{"-1", "1"}}},
			{Value: "3", Multiplicity: 1, Vectors: [][]string{{"1", "1"}}},
		},
	}

	stdout, stderr, code := execute(t, cli.NewEigenCommand(cli.WithFs(fs)), "--output", "yaml", "a.txt")
	require.Equal(t, cli.ExitOK, code, stderr)
	var fromYAML cli.EigenReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &fromYAML))
	assert.Equal(t, want, fromYAML)

	stdout, stderr, code = execute(t, cli.NewEigenCommand(cli.WithFs(fs)), "-o", "JSON", "a.txt")
	require.Equal(t, cli.ExitOK, code, stderr)
	var fromJSON cli.EigenReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &fromJSON))
	assert.Equal(t, want, fromJSON)
}

func TestEigen_Color(t *testing.T) {
	fs := memFs(t, map[string]string{"a.txt": "1 0\n0 1\n"})

	stdout, _, code := execute(t, cli.NewEigenCommand(cli.WithFs(fs)), "--color", "always", "a.txt")
	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, stdout, "\x1b[")
	assert.Contains(t, stdout, "Matrix([[1, 0], [0, 1]])\n")

	stdout, _, code = execute(t, cli.NewEigenCommand(cli.WithFs(fs)), "--color", "never", "a.txt")
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, identityOutput, stdout)
}

func TestEigen_Config(t *testing.T) {
	fs := memFs(t, map[string]string{"a.txt": "1;0\n0;1\n"})
	cfgFile := filepath.Join(t.TempDir(), "eigenkit.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("matrix:\n  delimiter: \";\"\n"), 0o644))

	stdout, stderr, code := execute(t, cli.NewEigenCommand(cli.WithFs(fs)), "--config", cfgFile, "a.txt")
	require.Equal(t, cli.ExitOK, code, stderr)
	assert.Equal(t, identityOutput, stdout)

	_, stderr, code = execute(t, cli.NewEigenCommand(cli.WithFs(fs)), "--config", filepath.Join(t.TempDir(), "nope.yaml"), "a.txt")
	assert.NotEqual(t, cli.ExitOK, code)
	assert.Contains(t, stderr, "reading config")
}

func TestEigen_InvalidSettings(t *testing.T) {
	fs := memFs(t, map[string]string{"a.txt": "1\n"})

	_, stderr, code := execute(t, cli.NewEigenCommand(cli.WithFs(fs)), "--output", "xml", "a.txt")
	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, stderr, "output.format")

	t.Setenv("EIGENKIT_OUTPUT_COLOR", "sometimes")
	_, stderr, code = execute(t, cli.NewEigenCommand(cli.WithFs(fs)), "a.txt")
	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, stderr, "output.color")
}

func TestEigen_Logging(t *testing.T) {
	fs := memFs(t, map[string]string{"a.txt": "1 0\n0 1\n"})

	stdout, stderr, code := execute(t, cli.NewEigenCommand(cli.WithFs(fs)), "--log-level", "debug", "a.txt")
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, identityOutput, stdout)
	assert.Contains(t, stderr, "eigen decomposition done")
	assert.Contains(t, stderr, "run_id=")
	assert.Contains(t, stderr, "command=matrix2eigens")

	_, stderr, code = execute(t, cli.NewEigenCommand(cli.WithFs(fs)), "--log-level", "info", "--log-format", "json", "a.txt")
	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, stderr, `"msg":"eigen decomposition done"`)
}
