// SPDX-License-Identifier: MIT
// Package matrix - exact eigen decomposition.
//
// Purpose:
//   - Eigenvals: roots of det(λI − A) with algebraic multiplicities.
//   - Eigenvects: for each eigenvalue, a basis of ker(A − λI).
//
// Contract:
//   - Input must be square with rational entries.
//   - Output is sorted by number.Compare (real part, then imaginary part),
//     so conjugate pairs appear as (α − βI, α + βI).
//   - A characteristic factor of degree ≥ 3 without rational roots or
//     quadratic factors over Q yields poly.ErrUnsolvable; no floating-point
//     fallback is attempted.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/eigenkit/poly"
)

// Eigenvals returns the eigenvalues of m with their algebraic multiplicities.
//
// Stage 1 (Validate): square, rational (delegated to CharPoly).
// Stage 2 (Execute): factor the characteristic polynomial exactly.
// Complexity: O(n⁴) for CharPoly plus the root search.
func Eigenvals(m Matrix) ([]Eigenvalue, error) {
	p, err := CharPoly(m)
	if err != nil {
		return nil, matrixErrorf(opEigenvals, err)
	}
	roots, err := poly.Roots(p)
	if err != nil {
		return nil, matrixErrorf(opEigenvals, err)
	}

	out := make([]Eigenvalue, len(roots))
	for i, r := range roots {
		out[i] = Eigenvalue{Value: r.Value, Multiplicity: r.Multiplicity}
	}

	return out, nil
}

// Eigenvects returns every eigenvalue of m together with a basis of its
// eigenspace, in Eigenvals order.
//
// Returns ErrEigenFailed if some eigenspace is empty; with exact arithmetic
// that only happens if CharPoly and the matrix disagree.
func Eigenvects(m Matrix) ([]EigenSpace, error) {
	vals, err := Eigenvals(m)
	if err != nil {
		return nil, matrixErrorf(opEigvects, err)
	}

	out := make([]EigenSpace, 0, len(vals))
	for _, ev := range vals {
		shifted, err := Shift(m, ev.Value)
		if err != nil {
			return nil, matrixErrorf(opEigvects, err)
		}
		basis, err := NullSpace(shifted)
		if err != nil {
			return nil, matrixErrorf(opEigvects, err)
		}
		if len(basis) == 0 {
			return nil, matrixErrorf(fmt.Sprintf("%s(%s)", opEigvects, ev.Value), ErrEigenFailed)
		}
		out = append(out, EigenSpace{Value: ev.Value, Multiplicity: ev.Multiplicity, Vectors: basis})
	}

	return out, nil
}
