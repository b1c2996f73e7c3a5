// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"

	"github.com/katalvlaran/eigenkit/matrix"
	"github.com/katalvlaran/eigenkit/number"
)

// Mode is one real fundamental solution of x' = A·x:
//
//	x(t) = e^(Rate·t) · (Cos·cos(Freq·t) + Sin·sin(Freq·t))
//
// Freq is 0 for modes coming from real eigenvalues; Sin is then all zeros.
type Mode struct {
	Rate number.Quad   // α, real
	Freq number.Quad   // β ≥ 0, real
	Cos  []number.Quad // coefficient vector of cos(β·t)
	Sin  []number.Quad // coefficient vector of sin(β·t)
}

// IsOscillating reports whether the mode has a non-zero frequency.
func (m Mode) IsOscillating() bool { return !m.Freq.IsZero() }

// Verify checks m against A exactly:
//
//	(A − αI)·Cos =  β·Sin
//	(A − αI)·Sin = −β·Cos
//
// Returns matrix.ErrNonSquare / matrix.ErrDimensionMismatch for unusable
// shapes and ErrNotASolution when an identity fails.
func (m Mode) Verify(a matrix.Matrix) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return fmt.Errorf("Mode.Verify: %w", err)
	}
	n := a.Rows()
	if len(m.Cos) != n || len(m.Sin) != n {
		return fmt.Errorf("Mode.Verify: vectors of length %d/%d for %dx%d: %w",
			len(m.Cos), len(m.Sin), n, n, matrix.ErrDimensionMismatch)
	}

	// Values from different fields cannot satisfy the identities; bail out
	// before arithmetic would mix radicands.
	vals := append([]number.Quad{m.Rate, m.Freq}, m.Cos...)
	vals = append(vals, m.Sin...)
	for _, row := range matrix.ToRows(a) {
		vals = append(vals, row...)
	}
	if !number.SameField(vals...) {
		return fmt.Errorf("Mode.Verify: mixed radicands: %w", ErrNotASolution)
	}

	shifted, err := matrix.Shift(a, m.Rate)
	if err != nil {
		return fmt.Errorf("Mode.Verify: %w", err)
	}
	lhsCos, err := matrix.MatVec(shifted, m.Cos)
	if err != nil {
		return fmt.Errorf("Mode.Verify: %w", err)
	}
	lhsSin, err := matrix.MatVec(shifted, m.Sin)
	if err != nil {
		return fmt.Errorf("Mode.Verify: %w", err)
	}

	negFreq := m.Freq.Neg()
	for i := 0; i < n; i++ {
		if !lhsCos[i].Equal(m.Freq.Mul(m.Sin[i])) {
			return fmt.Errorf("Mode.Verify: row %d of (A - %sI)Cos: %w", i+1, m.Rate, ErrNotASolution)
		}
		if !lhsSin[i].Equal(negFreq.Mul(m.Cos[i])) {
			return fmt.Errorf("Mode.Verify: row %d of (A - %sI)Sin: %w", i+1, m.Rate, ErrNotASolution)
		}
	}

	return nil
}

// Derive returns the real fundamental modes of x' = A·x for a rational
// square A, in eigenvalue order. A complex pair contributes two modes per
// eigenvector of its β > 0 member; the conjugate member is skipped.
//
// Errors are those of matrix.Eigenvects (ErrNonSquare, ErrNotRational,
// poly.ErrUnsolvable, ...).
func Derive(a matrix.Matrix) ([]Mode, error) {
	spaces, err := matrix.Eigenvects(a)
	if err != nil {
		return nil, fmt.Errorf("Derive: %w", err)
	}

	var modes []Mode
	for _, s := range spaces {
		if s.Value.IsReal() {
			for _, v := range s.Vectors {
				cos := vectorOf(v)
				modes = append(modes, Mode{
					Rate: s.Value,
					Freq: number.Zero(),
					Cos:  cos,
					Sin:  zeros(len(cos)),
				})
			}
			continue
		}
		beta := s.Value.Im()
		if beta.Sign() < 0 {
			continue // conjugate of a pair handled through its β > 0 member
		}
		alpha := s.Value.Re()
		for _, v := range s.Vectors {
			p, q := splitComplex(vectorOf(v))
			modes = append(modes,
				Mode{Rate: alpha, Freq: beta, Cos: p, Sin: negate(q)},
				Mode{Rate: alpha, Freq: beta, Cos: q, Sin: p},
			)
		}
	}

	return modes, nil
}

// vectorOf flattens an n×1 column.
func vectorOf(v *matrix.Dense) []number.Quad {
	rows := matrix.ToRows(v)
	out := make([]number.Quad, len(rows))
	for i, r := range rows {
		out[i] = r[0]
	}

	return out
}

// splitComplex returns the real and imaginary parts of a complex vector.
func splitComplex(v []number.Quad) (re, im []number.Quad) {
	re = make([]number.Quad, len(v))
	im = make([]number.Quad, len(v))
	for i, x := range v {
		re[i], im[i] = x.Re(), x.Im()
	}

	return re, im
}

func negate(v []number.Quad) []number.Quad {
	out := make([]number.Quad, len(v))
	for i, x := range v {
		out[i] = x.Neg()
	}

	return out
}

func zeros(n int) []number.Quad {
	out := make([]number.Quad, n)
	for i := range out {
		out[i] = number.Zero()
	}

	return out
}
