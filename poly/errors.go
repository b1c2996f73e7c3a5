// SPDX-License-Identifier: MIT
// Package poly: sentinel error set. Messages are prefixed with "poly: ...".

package poly

import "errors"

var (
	// ErrDegenerate is returned by SolveQuadratic when the leading
	// coefficient is zero, so the equation is not quadratic.
	ErrDegenerate = errors.New("poly: leading coefficient must not be zero")

	// ErrUnsolvable marks a factor of degree ≥ 3 with no rational root and
	// no quadratic factor over Q.
	ErrUnsolvable = errors.New("poly: factor has no closed form in Q(sqrt(d))")

	// ErrZeroPolynomial is returned by Roots for p == 0 (every x is a root).
	ErrZeroPolynomial = errors.New("poly: zero polynomial")
)
