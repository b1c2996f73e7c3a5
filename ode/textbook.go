// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"
	"io"
	"math/big"

	"github.com/katalvlaran/eigenkit/matrix"
	"github.com/katalvlaran/eigenkit/number"
)

// textbookRows is the worked example's system matrix.
var textbookRows = [][]int64{{1, -2}, {1, 1}}

// Textbook is the worked example x' = A·x printed with the book's fixed
// vector pair
//
//	A * [-2*sin(βt), sqrt(2)*cos(βt)] + B * [2*cos(βt), sqrt(2)*sin(βt)]
//
// for every complex eigenvalue pair α ± iβ of A. The pair is not derived
// from A; see Check.
type Textbook struct {
	a      *matrix.Dense
	spaces []matrix.EigenSpace
}

// NewTextbook returns the worked example for A = [[1, -2], [1, 1]].
func NewTextbook() (*Textbook, error) {
	a, err := matrix.NewFromInts(textbookRows)
	if err != nil {
		return nil, fmt.Errorf("NewTextbook: %w", err)
	}

	return NewTextbookFor(a)
}

// NewTextbookFor runs the textbook walkthrough on an arbitrary rational 2×2
// matrix. Returns ErrNot2x2 for any other shape and the matrix.Eigenvects
// errors for unusable entries.
func NewTextbookFor(a matrix.Matrix) (*Textbook, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("NewTextbookFor: %w", err)
	}
	if a.Rows() != 2 || a.Cols() != 2 {
		return nil, fmt.Errorf("NewTextbookFor(%dx%d): %w", a.Rows(), a.Cols(), ErrNot2x2)
	}
	spaces, err := matrix.Eigenvects(a)
	if err != nil {
		return nil, fmt.Errorf("NewTextbookFor: %w", err)
	}

	d, err := matrix.NewFromRows(matrix.ToRows(a))
	if err != nil {
		return nil, fmt.Errorf("NewTextbookFor: %w", err)
	}

	return &Textbook{a: d, spaces: spaces}, nil
}

// Matrix returns a copy of the system matrix.
func (tb *Textbook) Matrix() *matrix.Dense { return tb.a.Clone().(*matrix.Dense) }

// Eigenspaces returns the eigen decomposition the walkthrough prints.
func (tb *Textbook) Eigenspaces() []matrix.EigenSpace { return tb.spaces }

// Modes returns the textbook pair for each eigenvector of each complex
// eigenvalue, skipping an eigenvalue whose conjugate was already handled.
// Pairs are flattened: Modes()[2k] is the "A" vector, Modes()[2k+1] the "B" one.
func (tb *Textbook) Modes() []Mode {
	var (
		out       []Mode
		processed = make(map[string]struct{})
	)
	for _, s := range tb.spaces {
		if s.Value.IsReal() {
			continue
		}
		if _, ok := processed[s.Value.String()]; ok {
			continue
		}
		alpha, beta := s.Value.Re(), s.Value.Im().Abs()
		for range s.Vectors {
			out = append(out, textbookPair(alpha, beta)...)
		}
		processed[s.Value.Conj().String()] = struct{}{}
	}

	return out
}

// textbookPair builds the fixed vectors as modes:
//
//	[-2*sin(βt), sqrt(2)*cos(βt)]  → Cos = (0, √2), Sin = (−2, 0)
//	[2*cos(βt),  sqrt(2)*sin(βt)]  → Cos = (2, 0),  Sin = (0, √2)
func textbookPair(alpha, beta number.Quad) []Mode {
	sqrt2 := number.SqrtRat(big.NewRat(2, 1))
	zero := number.Zero()

	return []Mode{
		{Rate: alpha, Freq: beta, Cos: []number.Quad{zero, sqrt2}, Sin: []number.Quad{number.FromInt(-2), zero}},
		{Rate: alpha, Freq: beta, Cos: []number.Quad{number.FromInt(2), zero}, Sin: []number.Quad{zero, sqrt2}},
	}
}

// Check verifies every textbook mode against the matrix. It returns nil for
// the worked example and ErrTextbookMismatch (wrapping the Verify failure)
// when the fixed vectors do not solve the system.
func (tb *Textbook) Check() error {
	for i, m := range tb.Modes() {
		if err := m.Verify(tb.a); err != nil {
			return fmt.Errorf("Textbook.Check: vector %c for eigenvalue %s ± %s*I: %w: %w",
				"AB"[i%2], m.Rate, m.Freq, ErrTextbookMismatch, err)
		}
	}

	return nil
}

// Render writes the full walkthrough:
//
//	Matrix:
//	Matrix([
//	    [1, -2],
//	    [1, 1],
//	])
//
//	Eigenvalues and Eigenvectors:
//	Eigenvalue: 1 - sqrt(2)*I, Multiplicity: 1
//	  Eigenvector: Matrix([
//	...
//
//	Real-valued General Solution:
//	x(t) = e^(1t) * (
//	  A * Matrix([...]) +
//	  B * Matrix([...])
//	)
func (tb *Textbook) Render(w io.Writer, opts ...RenderOption) error {
	cfg := gatherRenderOptions(opts...)
	p := &printer{w: w}

	p.println(cfg.heading("Matrix:"))
	p.println(tb.a.Pretty())

	p.println()
	p.println(cfg.heading("Eigenvalues and Eigenvectors:"))
	for _, s := range tb.spaces {
		p.printf("Eigenvalue: %s, Multiplicity: %d\n", s.Value, s.Multiplicity)
		for _, v := range s.Vectors {
			p.printf("  Eigenvector: %s\n", v.Pretty())
		}
	}

	p.println()
	p.println(cfg.heading("Real-valued General Solution:"))
	modes := tb.Modes()
	for i := 0; i+1 < len(modes); i += 2 {
		ma, mb := modes[i], modes[i+1]
		p.printf("x(t) = %s * (\n", exponent(ma.Rate))
		p.printf("  A * %s +\n", matrix.FormatPretty(modeCells(ma)))
		p.printf("  B * %s\n", matrix.FormatPretty(modeCells(mb)))
		p.println(")")
	}

	return p.err
}

// RenderTextbook writes the worked example for [[1, -2], [1, 1]] to w.
func RenderTextbook(w io.Writer, opts ...RenderOption) error {
	tb, err := NewTextbook()
	if err != nil {
		return err
	}

	return tb.Render(w, opts...)
}
