// SPDX-License-Identifier: MIT

package ode

import (
	"strings"

	"github.com/katalvlaran/eigenkit/number"
)

// splitDenominator splits a sympy-style monomial "3*sqrt(2)/2" into
// ("3*sqrt(2)", "2"). Strings without a denominator return den == "".
func splitDenominator(s string) (num, den string) {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[:i], s[i+1:]
	}

	return s, ""
}

// mulString renders coef·factor the way sympy prints a product:
//
//	1, cos(t)         -> cos(t)
//	-2, sin(t)        -> -2*sin(t)
//	sqrt(3)/2, cos(t) -> sqrt(3)*cos(t)/2
//	1 + sqrt(2), t    -> (1 + sqrt(2))*t
func mulString(coef number.Quad, factor string) string {
	if !coef.IsMonomial() {
		return "(" + coef.String() + ")*" + factor
	}
	num, den := splitDenominator(coef.String())
	var out string
	switch num {
	case "1":
		out = factor
	case "-1":
		out = "-" + factor
	default:
		out = num + "*" + factor
	}
	if den != "" {
		out += "/" + den
	}

	return out
}

// trigArg renders β·t, e.g. "t", "2*t", "sqrt(2)*t", "t/2".
func trigArg(beta number.Quad) string { return mulString(beta, "t") }

// exponent renders the growth factor the way the textbook prints it:
// "e^(1t)", "e^(-1/2t)", "e^((1 + sqrt(5))t)".
func exponent(alpha number.Quad) string {
	s := alpha.String()
	if !alpha.IsMonomial() {
		s = "(" + s + ")"
	}

	return "e^(" + s + "t)"
}

// modeCell renders one component c·cos(βt) + s·sin(βt) of a mode.
func modeCell(c, s, beta number.Quad) string {
	if beta.IsZero() {
		return c.String()
	}
	arg := trigArg(beta)
	var terms []string
	if !c.IsZero() {
		terms = append(terms, mulString(c, "cos("+arg+")"))
	}
	if !s.IsZero() {
		terms = append(terms, mulString(s, "sin("+arg+")"))
	}
	switch len(terms) {
	case 0:
		return "0"
	case 1:
		return terms[0]
	}
	if rest, ok := strings.CutPrefix(terms[1], "-"); ok {
		return terms[0] + " - " + rest
	}

	return terms[0] + " + " + terms[1]
}

// modeCells renders a mode as a column of cells for matrix.FormatPretty.
func modeCells(m Mode) [][]string {
	out := make([][]string, len(m.Cos))
	for i := range m.Cos {
		out[i] = []string{modeCell(m.Cos[i], m.Sin[i], m.Freq)}
	}

	return out
}
