// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (wrapped with a call-site tag)
// and tests check them via errors.Is. No kernel panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("Tag: %w", ErrX) at the
// detection site; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> parse -> dimension mismatch -> domain (rational/square)
// -> eigen failures.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions: ragged rows on
	// construction or parsing, Add/Sub of different shapes, Mul with a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrParse marks a token that is not a rational literal. The concrete
	// error is a *ParseError carrying line/column and the number-level cause.
	ErrParse = errors.New("matrix: parse error")

	// ErrEmpty is returned by the reader when the input holds no rows.
	ErrEmpty = errors.New("matrix: no rows in input")

	// ErrNotRational is returned by kernels that need rational entries
	// (CharPoly, Eigen*) when an entry carries a radical.
	ErrNotRational = errors.New("matrix: entries must be rational")

	// ErrEigenFailed indicates an eigenvalue whose eigenspace came out empty,
	// which means the characteristic polynomial and the matrix disagree.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
