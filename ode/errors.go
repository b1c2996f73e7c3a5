// SPDX-License-Identifier: MIT
// Package ode: sentinel error set.
// Call sites wrap with fmt.Errorf("Tag: %w", ErrX); callers match with errors.Is.

package ode

import "errors"

var (
	// ErrNot2x2 is returned when the textbook walkthrough gets a matrix that
	// is not 2×2.
	ErrNot2x2 = errors.New("ode: textbook example needs a 2x2 matrix")

	// ErrNotASolution is returned by Mode.Verify when the mode does not
	// satisfy x' = A·x.
	ErrNotASolution = errors.New("ode: mode does not solve the system")

	// ErrTextbookMismatch is returned by Textbook.Check when the fixed
	// textbook vectors do not solve the system for the given matrix.
	ErrTextbookMismatch = errors.New("ode: textbook vectors do not solve the system")
)
