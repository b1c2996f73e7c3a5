// SPDX-License-Identifier: MIT

package matrix

import "strings"

// ---------- Formatting literals ----------
const (
	_fmtOpen       = "Matrix(["
	_fmtClose      = "])"
	_fmtSep        = ", "
	_fmtPrettyIndt = "    "
)

// String renders m the way sympy's str(Matrix) does:
//
//	Matrix([[1, 0], [0, 1]])
func (m *Dense) String() string {
	rows := ToStrings(m)
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(FormatRow(row))
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// Pretty renders m one row per line:
//
//	Matrix([
//	    [1, -2],
//	    [1, 1],
//	])
func (m *Dense) Pretty() string { return FormatPretty(ToStrings(m)) }

// FormatRow renders one row as "[a, b, c]".
func FormatRow(row []string) string {
	return "[" + strings.Join(row, _fmtSep) + "]"
}

// FormatPretty renders pre-formatted cells in the Pretty layout. It lets
// callers print symbolic cells (e.g. "-2*sin(sqrt(2)*t)") with the same
// framing as numeric matrices.
func FormatPretty(rows [][]string) string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen + "\n")
	for _, row := range rows {
		sb.WriteString(_fmtPrettyIndt + FormatRow(row) + ",\n")
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
