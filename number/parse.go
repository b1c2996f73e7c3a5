// SPDX-License-Identifier: MIT

package number

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Accepted literal grammar. Nothing outside these two shapes is ever
// interpreted, so input text cannot reach anything but digit parsing.
var (
	// [sign] digits [. digits] [e[sign]digits] | [sign] . digits [e...]
	decimalLiteral = regexp.MustCompile(`^([+-]?)(\d*)(?:\.(\d*))?(?:[eE]([+-]?\d{1,4}))?$`)

	// [sign] digits / [sign] digits
	fractionLiteral = regexp.MustCompile(`^([+-]?\d+)/([+-]?\d+)$`)
)

var ten = big.NewInt(10)

// ParseRat parses a plain rational literal: an integer ("12"), a decimal
// ("-0.25", ".5", "3."), a scientific literal ("1e-3") or a fraction ("3/4").
// Surrounding whitespace is ignored.
//
// Decimals are read exactly: "0.1" is 1/10, not the nearest binary float.
// Returns ErrSyntax for anything else and ErrDivisionByZero for "x/0".
func ParseRat(token string) (*big.Rat, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return nil, fmt.Errorf("ParseRat(%q): %w", token, ErrSyntax)
	}

	if m := fractionLiteral.FindStringSubmatch(s); m != nil {
		num, ok1 := new(big.Int).SetString(m[1], 10)
		den, ok2 := new(big.Int).SetString(m[2], 10)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("ParseRat(%q): %w", token, ErrSyntax)
		}
		if den.Sign() == 0 {
			return nil, fmt.Errorf("ParseRat(%q): %w", token, ErrDivisionByZero)
		}

		return new(big.Rat).SetFrac(num, den), nil
	}

	m := decimalLiteral.FindStringSubmatch(s)
	if m == nil || m[2]+m[3] == "" {
		return nil, fmt.Errorf("ParseRat(%q): %w", token, ErrSyntax)
	}
	sign, intPart, fracPart, expPart := m[1], m[2], m[3], m[4]

	mant, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return nil, fmt.Errorf("ParseRat(%q): %w", token, ErrSyntax)
	}
	exp := -len(fracPart)
	if expPart != "" {
		var e int
		if _, err := fmt.Sscanf(expPart, "%d", &e); err != nil {
			return nil, fmt.Errorf("ParseRat(%q): %w", token, ErrSyntax)
		}
		exp += e
	}

	out := new(big.Rat).SetInt(mant)
	if exp != 0 {
		pow := new(big.Int).Exp(ten, big.NewInt(int64(abs(exp))), nil)
		if exp > 0 {
			out.Mul(out, new(big.Rat).SetInt(pow))
		} else {
			out.Quo(out, new(big.Rat).SetInt(pow))
		}
	}
	if sign == "-" {
		out.Neg(out)
	}

	return out, nil
}

// Parse is ParseRat lifted to a Quad.
func Parse(token string) (Quad, error) {
	r, err := ParseRat(token)
	if err != nil {
		return Quad{}, err
	}

	return Quad{a: r}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
