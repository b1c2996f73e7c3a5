// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/domain checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/eigenkit/number"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil (including a typed
// nil *Dense hidden in the interface).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b are non-nil with equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNonSquare otherwise.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateRational checks that every entry is rational.
// Complexity: O(r*c).
func ValidateRational(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	d := toDense(m)
	for idx, v := range d.data {
		if !v.IsRational() {
			return validatorErrorf(fmt.Sprintf("ValidateRational(%d,%d)", idx/d.c, idx%d.c), ErrNotRational)
		}
	}

	return nil
}

// ValidateRectangular checks a row set is non-empty and every row has the
// length of the first one. The error names the first offending row (1-based).
// Complexity: O(rows).
func ValidateRectangular(rows [][]number.Quad) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRectangular", ErrInvalidDimensions)
	}
	want := len(rows[0])
	for i, row := range rows {
		if len(row) != want {
			return validatorErrorf(
				fmt.Sprintf("ValidateRectangular: row %d has %d entries, want %d", i+1, len(row), want),
				ErrDimensionMismatch,
			)
		}
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []number.Quad, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
