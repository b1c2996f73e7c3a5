package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eigenkit/matrix"
	"github.com/katalvlaran/eigenkit/number"
)

// Output formats accepted by output.format.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// EigenReport is the structured form of matrix2eigens output. Every value is
// the exact text form, e.g. "1 - sqrt(2)*I".
type EigenReport struct {
	Matrix       [][]string         `json:"matrix" yaml:"matrix"`
	Eigenvalues  []EigenvalueReport `json:"eigenvalues" yaml:"eigenvalues"`
	Eigenvectors []EigenspaceReport `json:"eigenvectors" yaml:"eigenvectors"`
}

// EigenvalueReport is one eigenvalue with its algebraic multiplicity.
type EigenvalueReport struct {
	Value        string `json:"value" yaml:"value"`
	Multiplicity int    `json:"multiplicity" yaml:"multiplicity"`
}

// EigenspaceReport is one eigenvalue with a basis of its eigenspace.
type EigenspaceReport struct {
	Value        string     `json:"value" yaml:"value"`
	Multiplicity int        `json:"multiplicity" yaml:"multiplicity"`
	Vectors      [][]string `json:"vectors" yaml:"vectors"`
}

// QuadraticReport is the structured form of quadratic output. Error is set
// instead of Roots when a is zero.
type QuadraticReport struct {
	A     string   `json:"a" yaml:"a"`
	B     string   `json:"b" yaml:"b"`
	C     string   `json:"c" yaml:"c"`
	Roots []string `json:"roots,omitempty" yaml:"roots,omitempty"`
	Error string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewEigenReport converts a decomposition into its report form.
func NewEigenReport(res *matrix.EigenResult) EigenReport {
	rep := EigenReport{
		Matrix:       matrix.ToStrings(res.Matrix),
		Eigenvalues:  make([]EigenvalueReport, 0, len(res.Eigenvalues)),
		Eigenvectors: make([]EigenspaceReport, 0, len(res.Eigenvectors)),
	}
	for _, ev := range res.Eigenvalues {
		rep.Eigenvalues = append(rep.Eigenvalues, EigenvalueReport{
			Value:        ev.Value.String(),
			Multiplicity: ev.Multiplicity,
		})
	}
	for _, s := range res.Eigenvectors {
		vectors := make([][]string, 0, len(s.Vectors))
		for _, v := range s.Vectors {
			vectors = append(vectors, columnStrings(v))
		}
		rep.Eigenvectors = append(rep.Eigenvectors, EigenspaceReport{
			Value:        s.Value.String(),
			Multiplicity: s.Multiplicity,
			Vectors:      vectors,
		})
	}

	return rep
}

// columnStrings flattens an n×1 column into its entries.
func columnStrings(v *matrix.Dense) []string {
	rows := matrix.ToStrings(v)
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r[0]
	}

	return out
}

// writeEigenText prints the classic layout:
//
//	Matrix:
//	Matrix([[1, 0], [0, 1]])
//
//	Eigenvalues:
//	  1: multiplicity 2
//
//	Eigenvectors:
//	  Eigenvalue: 1, Multiplicity: 2
//	    Eigenvector: Matrix([[1], [0]])
//	    Eigenvector: Matrix([[0], [1]])
func writeEigenText(w io.Writer, res *matrix.EigenResult, st *styler) error {
	var b strings.Builder

	fmt.Fprintln(&b, st.Heading("Matrix:"))
	fmt.Fprintln(&b, res.Matrix.String())

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, st.Heading("Eigenvalues:"))
	for _, ev := range res.Eigenvalues {
		fmt.Fprintf(&b, "  %s: multiplicity %d\n", ev.Value, ev.Multiplicity)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, st.Heading("Eigenvectors:"))
	for _, s := range res.Eigenvectors {
		fmt.Fprintf(&b, "  Eigenvalue: %s, Multiplicity: %d\n", s.Value, s.Multiplicity)
		for _, v := range s.Vectors {
			fmt.Fprintf(&b, "    Eigenvector: %s\n", v.String())
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeRootsText prints "The roots are: [r1, r2]".
func writeRootsText(w io.Writer, roots []number.Quad) error {
	_, err := fmt.Fprintf(w, "The roots are: [%s]\n", strings.Join(quadStrings(roots), ", "))
	return err
}

func newQuadraticReport(a, b, c *big.Rat, roots []number.Quad) QuadraticReport {
	return QuadraticReport{
		A:     a.RatString(),
		B:     b.RatString(),
		C:     c.RatString(),
		Roots: quadStrings(roots),
	}
}

func quadStrings(xs []number.Quad) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}

	return out
}

// writeStructured encodes v as YAML or JSON.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
