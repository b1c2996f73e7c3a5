// SPDX-License-Identifier: MIT
// Package matrix - exact linear algebra kernels.
//
// Purpose:
//   - RREF: Gauss–Jordan elimination over Q(√d) with first-non-zero pivoting.
//     Exact arithmetic means "non-zero" is a true test, not a tolerance.
//   - NullSpace: basis of ker(m) read off the RREF, sympy convention
//     (one vector per free column, that column set to 1).
//   - CharPoly: det(λI − A) for rational A via Faddeev–LeVerrier.
//
// Determinism:
//   - Fixed loop orders; pivots are always the first non-zero in the column.

package matrix

import (
	"math/big"

	"github.com/katalvlaran/eigenkit/number"
	"github.com/katalvlaran/eigenkit/poly"
)

// RREF returns the reduced row echelon form of m and the pivot columns.
// The input is not mutated. All entries must share one radicand.
//
// Stage 1 (Validate): non-nil.
// Stage 2 (Prepare): clone into a working Dense.
// Stage 3 (Execute): for each column pick the first non-zero pivot at or
// below the current row, normalize it to 1, and clear the column above and below.
// Complexity: O(r·c·min(r,c)).
func RREF(m Matrix) (*Dense, []int, error) {
	// Stage 1: Validate
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}

	// Stage 2: Prepare
	w := toDense(m).cloneDense()
	pivots := make([]int, 0, min(w.r, w.c))

	// Stage 3: Execute
	row := 0
	for col := 0; col < w.c && row < w.r; col++ {
		p := -1
		for i := row; i < w.r; i++ {
			if !w.at(i, col).IsZero() {
				p = i
				break
			}
		}
		if p < 0 {
			continue // free column
		}
		w.swapRows(p, row)

		inv, err := w.at(row, col).Inv()
		if err != nil {
			return nil, nil, matrixErrorf(opRREF, err) // unreachable: pivot is non-zero
		}
		for j := col; j < w.c; j++ {
			w.set(row, j, w.at(row, j).Mul(inv))
		}
		for i := 0; i < w.r; i++ {
			if i == row {
				continue
			}
			f := w.at(i, col)
			if f.IsZero() {
				continue
			}
			for j := col; j < w.c; j++ {
				w.set(i, j, w.at(i, j).Sub(f.Mul(w.at(row, j))))
			}
		}
		pivots = append(pivots, col)
		row++
	}

	return w, pivots, nil
}

// Rank returns the number of pivots in RREF(m).
func Rank(m Matrix) (int, error) {
	_, pivots, err := RREF(m)
	if err != nil {
		return 0, err
	}

	return len(pivots), nil
}

// NullSpace returns a basis of {v : m·v = 0} as c×1 column matrices.
// For each free column f the basis vector has v[f] = 1, zeros on the other
// free columns, and v[p_k] = −rref[k][f] on the pivot columns.
// An injective m yields an empty basis.
// Complexity: O(r·c·min(r,c)) for the elimination plus O(c²) assembly.
func NullSpace(m Matrix) ([]*Dense, error) {
	rref, pivots, err := RREF(m)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}

	isPivot := make([]bool, rref.c)
	for _, p := range pivots {
		isPivot[p] = true
	}

	var basis []*Dense
	for free := 0; free < rref.c; free++ {
		if isPivot[free] {
			continue
		}
		v, err := NewDense(rref.c, 1)
		if err != nil {
			return nil, matrixErrorf(opNullSpace, err)
		}
		v.set(free, 0, number.One())
		for k, pc := range pivots {
			v.set(pc, 0, rref.at(k, free).Neg())
		}
		basis = append(basis, v)
	}

	return basis, nil
}

// CharPoly returns the monic characteristic polynomial det(λI − A).
//
// Faddeev–LeVerrier over Q:
//
//	M_0 = 0, c_n = 1
//	M_k = A·M_{k−1} + c_{n−k+1}·I
//	c_{n−k} = −tr(A·M_k) / k
//
// Returns ErrNonSquare or ErrNotRational for unsuitable input.
// Complexity: O(n⁴) rational operations.
func CharPoly(m Matrix) (poly.Poly, error) {
	if err := ValidateSquare(m); err != nil {
		return poly.Poly{}, matrixErrorf(opCharPoly, err)
	}
	if err := ValidateRational(m); err != nil {
		return poly.Poly{}, matrixErrorf(opCharPoly, err)
	}

	a := toRats(toDense(m))
	n := len(a)
	coef := make([]*big.Rat, n+1)
	coef[n] = big.NewRat(1, 1)

	mk := ratZeros(n)
	for k := 1; k <= n; k++ {
		mk = ratMul(a, mk)
		for i := 0; i < n; i++ {
			mk[i][i].Add(mk[i][i], coef[n-k+1])
		}
		tr := ratTrace(ratMul(a, mk))
		coef[n-k] = tr.Quo(tr, big.NewRat(int64(-k), 1))
	}

	return poly.New(coef...), nil
}

func ratZeros(n int) [][]*big.Rat {
	out := make([][]*big.Rat, n)
	for i := range out {
		out[i] = make([]*big.Rat, n)
		for j := range out[i] {
			out[i][j] = new(big.Rat)
		}
	}

	return out
}

func ratMul(a, b [][]*big.Rat) [][]*big.Rat {
	n := len(a)
	out := ratZeros(n)
	tmp := new(big.Rat)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			if a[i][k].Sign() == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out[i][j].Add(out[i][j], tmp.Mul(a[i][k], b[k][j]))
			}
		}
	}

	return out
}

func ratTrace(a [][]*big.Rat) *big.Rat {
	tr := new(big.Rat)
	for i := range a {
		tr.Add(tr, a[i][i])
	}

	return tr
}

// Determinant returns det(m) for a rational square m, read off the
// characteristic polynomial: det(A) = (−1)^n · c_0.
func Determinant(m Matrix) (*big.Rat, error) {
	p, err := CharPoly(m)
	if err != nil {
		return nil, matrixErrorf("Determinant", err)
	}
	det := p.Coef(0)
	if m.Rows()%2 == 1 {
		det.Neg(det)
	}

	return det, nil
}
