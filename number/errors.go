// SPDX-License-Identifier: MIT
// Package number: sentinel error set.
// Every message is prefixed with "number: ..." so log lines are easy to grep.
// Call sites wrap with fmt.Errorf("Tag: %w", ErrX); callers match with errors.Is.

package number

import "errors"

var (
	// ErrSyntax is returned by ParseRat when a token is not a plain rational literal.
	ErrSyntax = errors.New("number: invalid numeric literal")

	// ErrDivisionByZero is returned by Inv/Div on a zero divisor and by
	// ParseRat on a fraction with a zero denominator.
	ErrDivisionByZero = errors.New("number: division by zero")
)
